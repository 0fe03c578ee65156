package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfYearIndex_Bounds(t *testing.T) {
	t.Parallel()

	for _, year := range testYears {
		first, err := DayOfYearIndex(year, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, first)

		last, err := DayOfYearIndex(year, 11, 31)
		require.NoError(t, err)
		assert.Equal(t, DaysInYear(year)-1, last, "year %d", year)
	}
}

func TestDayOfYearIndex_StrictlyIncreasing(t *testing.T) {
	t.Parallel()

	for _, year := range []int{2023, 2024} {
		prev := -1
		for m := 0; m < 12; m++ {
			n, _ := DaysInMonth(year, m)
			for d := 1; d <= n; d++ {
				idx, err := DayOfYearIndex(year, m, d)
				require.NoError(t, err)
				require.Equal(t, prev+1, idx, "%d-%02d-%02d", year, m+1, d)
				prev = idx
			}
		}
	}
}

func TestDayOfYearIndex_MatchesTimeYearDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year, month, day int
	}{
		{2024, 1, 29},
		{2024, 2, 1},
		{2023, 2, 1},
		{2025, 6, 15},
	}
	for _, tc := range cases {
		idx, err := DayOfYearIndex(tc.year, tc.month, tc.day)
		require.NoError(t, err)
		want := time.Date(tc.year, time.Month(tc.month+1), tc.day, 0, 0, 0, 0, time.UTC).YearDay() - 1
		assert.Equal(t, want, idx)
	}
}

func TestDayOfYearIndex_NotMonthRelative(t *testing.T) {
	t.Parallel()

	idx, err := DayOfYearIndex(2024, 2, 15)
	require.NoError(t, err)
	assert.Equal(t, 31+29+14, idx)
}

func TestDayOfYearIndex_Invalid(t *testing.T) {
	t.Parallel()

	_, err := DayOfYearIndex(2023, 1, 29)
	assert.True(t, IsInvalidDate(err))

	_, err = DayOfYearIndex(2024, 3, 0)
	assert.True(t, IsInvalidDate(err))

	_, err = DayOfYearIndex(2024, 3, 31)
	assert.True(t, IsInvalidDate(err))

	_, err = DayOfYearIndex(2024, -1, 1)
	assert.True(t, IsInvalidMonth(err))
	assert.False(t, IsInvalidDate(err))
}
