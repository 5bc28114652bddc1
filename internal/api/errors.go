package api

import "fmt"

// RemoteError reports a failed call to the remote todo service.
// Status is 0 when the request never completed (transport error, timeout).
type RemoteError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 && e.Err == nil {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
