// Package activity defines the per-day activity series consumed by the year
// view and the providers that produce it.
package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
)

// Series holds one count per day of a year; index 0 is January 1st.
// Index it with calendar.DayOfYearIndex.
type Series []int

// Total sums the series, ignoring negative entries.
func (s Series) Total() int {
	total := 0
	for _, v := range s {
		if v > 0 {
			total += v
		}
	}
	return total
}

// Validate checks that s has exactly one entry per day of year.
func (s Series) Validate(year int) error {
	if want := calendar.DaysInYear(year); len(s) != want {
		return &InvalidSeriesLengthError{Year: year, Want: want, Got: len(s)}
	}
	return nil
}

// Provider supplies the activity series for a year.
type Provider interface {
	Series(ctx context.Context, year int) (Series, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, year int) (Series, error)

func (f ProviderFunc) Series(ctx context.Context, year int) (Series, error) {
	return f(ctx, year)
}

// InvalidSeriesLengthError reports a series whose length does not match the
// number of days in its year.
type InvalidSeriesLengthError struct {
	Year int
	Want int
	Got  int
}

func (e *InvalidSeriesLengthError) Error() string {
	return fmt.Sprintf("activity series for %d has %d days, want %d", e.Year, e.Got, e.Want)
}

func IsInvalidSeriesLength(err error) bool {
	var e *InvalidSeriesLengthError
	return errors.As(err, &e)
}
