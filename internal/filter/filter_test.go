package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoterm/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sample() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Buy milk", CreatedAt: day("2023-12-31")},
		{ID: 2, Title: "Walk the dog", Completed: true, CreatedAt: day("2024-01-01")},
		{ID: 3, Title: "buy bread", CreatedAt: day("2024-01-15")},
		{ID: 4, Title: "Call mom", CreatedAt: day("2024-01-31")},
		{ID: 5, Title: "File taxes", CreatedAt: day("2024-02-01")},
	}
}

func TestApplyIdentityWhenInactive(t *testing.T) {
	todos := sample()
	got := Apply(todos, Spec{})
	assert.Equal(t, todos, got)
	assert.False(t, Spec{}.Active())
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	got := Apply(sample(), Spec{Search: "BUY"})
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestApplyDateRangeInclusive(t *testing.T) {
	got := Apply(sample(), Spec{From: day("2024-01-01"), To: day("2024-01-31")})
	assert.Equal(t, []int{2, 3, 4}, ids(got))
}

func TestApplyOpenBounds(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, ids(Apply(sample(), Spec{From: day("2024-01-15")})))
	assert.Equal(t, []int{1, 2}, ids(Apply(sample(), Spec{To: day("2024-01-01")})))
}

func TestApplyAllPredicatesMustHold(t *testing.T) {
	spec := Spec{Search: "buy", From: day("2024-01-01"), To: day("2024-01-31")}
	got := Apply(sample(), spec)
	require.Equal(t, []int{3}, ids(got))
	for _, td := range got {
		assert.True(t, spec.Matches(td))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	todos := sample()
	got := Apply(todos, Spec{Search: "a"})
	// result must be a subsequence of the input
	i := 0
	for _, td := range todos {
		if i < len(got) && got[i].ID == td.ID {
			i++
		}
	}
	assert.Equal(t, len(got), i, "filtered result is not order-preserving")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	todos := sample()
	before := ids(todos)
	Apply(todos, Spec{Search: "buy"})
	assert.Equal(t, before, ids(todos))
}

func ids(todos []model.Todo) []int {
	out := make([]int, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}
