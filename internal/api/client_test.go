package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, log.New(io.Discard))
}

func TestListTodosMapsWireFields(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		io.WriteString(w, `{
			"todos": [
				{"id": 1, "todo": "Buy milk", "completed": false, "userId": 26},
				{"id": 2, "todo": "Walk the dog", "completed": true, "userId": 48}
			],
			"total": 2, "skip": 0, "limit": 30
		}`)
	})

	todos, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, 1, todos[0].ID)
	assert.Equal(t, "Buy milk", todos[0].Title, `wire field "todo" maps to Title`)
	assert.Equal(t, 26, todos[0].UserID)
	assert.True(t, todos[1].Completed)
	assert.True(t, todos[0].CreatedAt.IsZero(), "the service has no creation dates")
}

func TestCreateTodoPostsAndEchoes(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/todos/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Buy milk", body["todo"])
		assert.Equal(t, false, body["completed"])
		assert.Equal(t, float64(1), body["userId"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": 255, "todo": "Buy milk", "completed": false, "userId": 1}`)
	})

	todo, err := c.CreateTodo(context.Background(), "Buy milk", 1)
	require.NoError(t, err)
	assert.Equal(t, 255, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
}

func TestSetCompletedPutsPartialBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/todos/7", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"completed": true}, body)

		io.WriteString(w, `{"id": 7, "todo": "x", "completed": true, "userId": 1}`)
	})

	assert.NoError(t, c.SetCompleted(context.Background(), 7, true))
}

func TestDeleteTodoIgnoresBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/todos/7", r.URL.Path)
		io.WriteString(w, `{"id": 7, "isDeleted": true}`)
	})

	assert.NoError(t, c.DeleteTodo(context.Background(), 7))
}

func TestNon2xxBecomesRemoteError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := c.ListTodos(context.Background())
	require.Error(t, err)

	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusInternalServerError, re.Status)
	assert.Contains(t, re.Error(), "GET /todos")
}

func TestTransportErrorBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := New(srv.URL, time.Second, log.New(io.Discard))

	err := c.DeleteTodo(context.Background(), 1)
	require.Error(t, err)

	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Status)
	assert.Error(t, re.Unwrap())
}
