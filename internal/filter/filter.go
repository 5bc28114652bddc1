// Package filter derives the visible subset of a todo collection.
package filter

import (
	"strings"
	"time"

	"github.com/idilsaglam/todoterm/internal/model"
)

// Spec is the filter specification: a search string plus an inclusive
// calendar-date range. Zero From/To means that bound is open.
type Spec struct {
	Search string
	From   time.Time
	To     time.Time
}

// Active reports whether any predicate is in effect.
func (s Spec) Active() bool {
	return strings.TrimSpace(s.Search) != "" || !s.From.IsZero() || !s.To.IsZero()
}

// Matches checks all three predicates against one todo.
func (s Spec) Matches(t model.Todo) bool {
	if q := strings.ToLower(strings.TrimSpace(s.Search)); q != "" {
		if !strings.Contains(strings.ToLower(t.Title), q) {
			return false
		}
	}
	day := t.CreatedOn()
	if !s.From.IsZero() && day.Before(dateOnly(s.From)) {
		return false
	}
	if !s.To.IsZero() && day.After(dateOnly(s.To)) {
		return false
	}
	return true
}

// Apply returns the ordered sublist of todos matching the spec.
// Pure: it never mutates the input and always allocates its result.
func Apply(todos []model.Todo, s Spec) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if s.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
