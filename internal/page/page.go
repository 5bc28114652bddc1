// Package page slices a filtered todo sequence into fixed-size pages.
// Everything here is pure; the app owns the current-page state.
package page

import (
	"fmt"

	"github.com/idilsaglam/todoterm/internal/model"
)

// DefaultSize is the page size unless overridden by config.
const DefaultSize = 10

// Count returns ceil(n/size), never less than 1: an empty collection still
// has one (empty) page.
func Count(n, size int) int {
	if size < 1 {
		size = DefaultSize
	}
	c := (n + size - 1) / size
	if c < 1 {
		c = 1
	}
	return c
}

// Valid reports whether k is an addressable page for n items.
func Valid(n, size, k int) bool {
	return k >= 1 && k <= Count(n, size)
}

// Slice returns page k of todos. Out-of-range pages yield an empty slice;
// callers are expected to validate with Valid first.
func Slice(todos []model.Todo, size, k int) []model.Todo {
	if size < 1 {
		size = DefaultSize
	}
	start := (k - 1) * size
	if start < 0 || start >= len(todos) {
		return nil
	}
	end := start + size
	if end > len(todos) {
		end = len(todos)
	}
	return todos[start:end]
}

// RangeLabel renders the "21-25 of 25 todos" summary for page k over n items.
func RangeLabel(n, size, k int) string {
	if size < 1 {
		size = DefaultSize
	}
	start := (k-1)*size + 1
	end := k * size
	if end > n {
		end = n
	}
	return fmt.Sprintf("%d-%d of %d todos", start, end, n)
}

// Entry is one slot in the page-number bar: either a page or a gap marker.
type Entry struct {
	Page int
	Gap  bool
}

// Window computes the page-number bar: always the first and last page plus
// any page within distance 2 of current, with one gap marker per run of
// skipped pages. With a single page there is nothing to render.
func Window(current, count int) []Entry {
	if count <= 1 {
		return nil
	}
	var out []Entry
	prev := 0
	for p := 1; p <= count; p++ {
		if p != 1 && p != count && abs(p-current) > 2 {
			continue
		}
		if prev != 0 && p-prev > 1 {
			out = append(out, Entry{Gap: true})
		}
		out = append(out, Entry{Page: p})
		prev = p
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
