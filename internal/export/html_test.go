package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/mapping"
)

func TestCells_GitHubLayout(t *testing.T) {
	t.Parallel()

	s := make(activity.Series, 366)
	s[0] = 1
	s[365] = 9

	v, err := graph.New(2024, s)
	require.NoError(t, err)

	cells, err := Cells(v)
	require.NoError(t, err)
	require.Len(t, cells, 366)

	// 2024-01-01 is a Monday.
	assert.Equal(t, Cell{Column: 0, Weekday: 1, Level: 1, Count: 1, Label: "January 1"}, cells[0])
	// 2024-12-31 is a Tuesday, day index 365 + 1 leading day -> column 52.
	assert.Equal(t, Cell{Column: 52, Weekday: 2, Level: mapping.MaxLevel, Count: 9, Label: "December 31"}, cells[365])

	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if cur.Weekday == 0 {
			assert.Equal(t, prev.Column+1, cur.Column)
		} else {
			assert.Equal(t, prev.Column, cur.Column)
			assert.Equal(t, prev.Weekday+1, cur.Weekday)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	s, err := activity.Seeded{Seed: 3}.Series(t.Context(), 2023)
	require.NoError(t, err)
	v, err := graph.New(2023, s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, v, "octocat 2023"))

	out := buf.String()
	assert.Contains(t, out, "octocat 2023")
	assert.Contains(t, out, "heatmap")
	assert.Contains(t, out, "#196127")
}
