// Package api talks to the remote todo service over its REST interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoterm/internal/model"
)

// Client is a thin HTTP client for the remote todo service.
// It returns *RemoteError for every failed call so callers can
// distinguish remote failures from local ones.
type Client struct {
	baseURL string
	hc      *http.Client
	log     *log.Logger
}

func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// remoteTodo is the wire shape of a todo. The service calls the title "todo".
type remoteTodo struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

func (r remoteTodo) toModel() model.Todo {
	return model.Todo{
		ID:        r.ID,
		Title:     r.Todo,
		Completed: r.Completed,
		UserID:    r.UserID,
	}
}

type listResponse struct {
	Todos []remoteTodo `json:"todos"`
	Total int          `json:"total"`
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
}

// ListTodos fetches the full collection. CreatedAt is left zero; the service
// has no creation dates, the store stamps synthetic ones.
func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &resp); err != nil {
		return nil, err
	}
	todos := make([]model.Todo, 0, len(resp.Todos))
	for _, rt := range resp.Todos {
		todos = append(todos, rt.toModel())
	}
	return todos, nil
}

// CreateTodo submits a new todo and returns the service's echo of it.
func (c *Client) CreateTodo(ctx context.Context, title string, userID int) (model.Todo, error) {
	body := remoteTodo{Todo: title, Completed: false, UserID: userID}
	var echoed remoteTodo
	if err := c.do(ctx, http.MethodPost, "/todos/add", body, &echoed); err != nil {
		return model.Todo{}, err
	}
	return echoed.toModel(), nil
}

// SetCompleted persists a completion flip. Only success/failure matters;
// the response body is ignored.
func (c *Client) SetCompleted(ctx context.Context, id int, completed bool) error {
	body := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), body, nil)
}

// DeleteTodo deletes a todo remotely. The response body is ignored.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: method + " " + path, URL: url, Err: fmt.Errorf("encode body: %w", err)}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return &RemoteError{Op: method + " " + path, URL: url, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "url", url, "err", err)
		return &RemoteError{Op: method + " " + path, URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request done", "method", method, "url", url, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: method + " " + path, URL: url, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Op: method + " " + path, URL: url, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
