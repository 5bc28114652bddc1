package store

import "errors"

// Validation errors: the operation is rejected before any remote call.
var ErrEmptyTitle = errors.New("title must not be empty")
