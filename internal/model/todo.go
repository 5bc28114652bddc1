// Package model holds the todo domain entities.
package model

import "time"

// Todo is the domain model for a single task record.
// CreatedAt carries day granularity only; see store for how it is assigned.
type Todo struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatedOn truncates CreatedAt to its calendar date.
func (t Todo) CreatedOn() time.Time {
	y, m, d := t.CreatedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Counts aggregates completion stats for the header and status bar.
type Counts struct {
	Total     int
	Completed int
	Pending   int
}

func Count(todos []Todo) Counts {
	c := Counts{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}
