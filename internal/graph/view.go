// Package graph composes a year of month grids with its activity series.
package graph

import (
	"fmt"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
	"github.com/fchimpan/gh-kusa-graph/internal/hover"
	"github.com/fchimpan/gh-kusa-graph/internal/mapping"
)

// YearView is immutable once built. Build a new one when the year changes.
type YearView struct {
	year   int
	months [12]calendar.MonthGrid
	series activity.Series
}

// New builds the twelve month grids for year and binds series to them.
// The series length is checked here so a bad provider fails before any lookup.
func New(year int, series activity.Series) (*YearView, error) {
	if err := series.Validate(year); err != nil {
		return nil, err
	}
	v := &YearView{
		year:   year,
		series: append(activity.Series(nil), series...),
	}
	for m := range v.months {
		g, err := calendar.BuildMonth(year, m)
		if err != nil {
			return nil, fmt.Errorf("build %s %d: %w", calendar.MonthName(m), year, err)
		}
		v.months[m] = g
	}
	return v, nil
}

func (v *YearView) Year() int { return v.year }

// Grid returns the grid of month (0=January). It panics on an invalid month
// like an out of range slice index would.
func (v *YearView) Grid(month int) calendar.MonthGrid {
	return v.months[month]
}

// CellAt implements hover.Grid.
func (v *YearView) CellAt(ref hover.CellRef) (calendar.Cell, bool) {
	if ref.Month < 0 || ref.Month >= len(v.months) {
		return 0, false
	}
	return v.months[ref.Month].Cell(ref.Week, ref.Slot)
}

// Count returns the activity count of (month, day).
func (v *YearView) Count(month, day int) (int, error) {
	idx, err := calendar.DayOfYearIndex(v.year, month, day)
	if err != nil {
		return 0, err
	}
	return v.series[idx], nil
}

// ColorAt returns the cell color of (month, day).
func (v *YearView) ColorAt(month, day int) (mapping.Color, error) {
	n, err := v.Count(month, day)
	if err != nil {
		return "", err
	}
	return mapping.ColorFor(n), nil
}

// LevelAt returns the intensity bucket of (month, day).
func (v *YearView) LevelAt(month, day int) (mapping.Level, error) {
	n, err := v.Count(month, day)
	if err != nil {
		return 0, err
	}
	return mapping.LevelFromCount(n), nil
}

// Total sums the year's activity.
func (v *YearView) Total() int {
	return v.series.Total()
}
