package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoterm/internal/page"
)

func TestRenderWindow(t *testing.T) {
	assert.Empty(t, renderWindow(page.Window(1, 1), 1), "single page renders no bar")

	bar := renderWindow(page.Window(6, 12), 6)
	for _, want := range []string{"1", "4", "5", "6", "7", "8", "12"} {
		assert.Contains(t, bar, want)
	}
	assert.Equal(t, 2, strings.Count(bar, "…"), "one ellipsis per side")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero(), "blank input means an open bound")

	_, err = parseDate("31/01/2024")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}
