// Package store owns the canonical in-memory todo collection.
//
// The store is strictly synchronous: every method runs on the app's single
// update loop. Remote propagation is the app's job; the store only validates
// input and mutates local state.
package store

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/idilsaglam/todoterm/internal/model"
)

// Remote is the subset of the todo service the app needs to sync the store.
type Remote interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, title string, userID int) (model.Todo, error)
	SetCompleted(ctx context.Context, id int, completed bool) error
	DeleteTodo(ctx context.Context, id int) error
}

type Store struct {
	todos []model.Todo
	rng   *rand.Rand
	now   func() time.Time
}

func New() *Store {
	return &Store{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewWithClock pins the clock and random source, for tests.
func NewWithClock(now func() time.Time, seed int64) *Store {
	return &Store{rng: rand.New(rand.NewSource(seed)), now: now}
}

// Todos returns a read-only view of the collection. Callers must not mutate it.
func (s *Store) Todos() []model.Todo { return s.todos }

func (s *Store) Counts() model.Counts { return model.Count(s.todos) }

// ValidateTitle trims the title and rejects empty ones. This runs before any
// remote call is attempted.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	return trimmed, nil
}

// Replace swaps in a freshly loaded collection. The service carries no
// creation dates, so each item gets a synthetic one: uniformly random within
// the past 365 days, re-rolled on every load. Deliberate stand-in data.
func (s *Store) Replace(items []model.Todo) {
	todos := make([]model.Todo, len(items))
	copy(todos, items)
	for i := range todos {
		todos[i].CreatedAt = s.syntheticDate()
	}
	s.todos = todos
}

// Prepend inserts a newly created todo at the front, stamped with today's
// date. When the service echoes no id, or an id the store already holds,
// a fresh local id is synthesized to keep ids unique.
func (s *Store) Prepend(t model.Todo) model.Todo {
	if t.ID == 0 || s.has(t.ID) {
		t.ID = s.nextLocalID()
	}
	t.CreatedAt = dateOf(s.now())
	s.todos = append([]model.Todo{t}, s.todos...)
	return t
}

// ToggleComplete flips the completion flag for id and returns the updated
// todo. The second result is false when id is absent (no-op).
func (s *Store) ToggleComplete(id int) (model.Todo, bool) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			return s.todos[i], true
		}
	}
	return model.Todo{}, false
}

// Delete removes the todo with the given id, reporting whether it was there.
func (s *Store) Delete(id int) bool {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) has(id int) bool {
	for _, t := range s.todos {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) nextLocalID() int {
	max := 0
	for _, t := range s.todos {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func (s *Store) syntheticDate() time.Time {
	return dateOf(s.now()).AddDate(0, 0, -s.rng.Intn(365))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
