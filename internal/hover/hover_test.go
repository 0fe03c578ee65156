package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
)

type testGrid struct {
	year   int
	months [12]calendar.MonthGrid
}

func newTestGrid(t *testing.T, year int) *testGrid {
	t.Helper()
	g := &testGrid{year: year}
	for m := 0; m < 12; m++ {
		mg, err := calendar.BuildMonth(year, m)
		require.NoError(t, err)
		g.months[m] = mg
	}
	return g
}

func (g *testGrid) Year() int { return g.year }

func (g *testGrid) CellAt(ref CellRef) (calendar.Cell, bool) {
	if ref.Month < 0 || ref.Month >= 12 {
		return 0, false
	}
	return g.months[ref.Month].Cell(ref.Week, ref.Slot)
}

// refFor locates day in month of g.
func (g *testGrid) refFor(t *testing.T, month, day int) CellRef {
	t.Helper()
	for wi, w := range g.months[month].Weeks {
		for si, c := range w {
			if int(c) == day {
				return CellRef{Month: month, Week: wi, Slot: si}
			}
		}
	}
	t.Fatalf("day %d not in month %d", day, month)
	return CellRef{}
}

func fixedGeometry(r Rect) Geometry {
	return func(CellRef) (Rect, bool) { return r, true }
}

func TestEnter_DayCell(t *testing.T) {
	t.Parallel()

	s := Enter(Idle, 2024, 4, calendar.Cell(5), Rect{Left: 50, Top: 60, Width: 2, Height: 1})
	assert.Equal(t, State{Hovering: true, Date: "May 5", Position: Point{X: 51, Y: 61}}, s)
}

func TestEnter_EmptyCellKeepsState(t *testing.T) {
	t.Parallel()

	hovering := Enter(Idle, 2024, 2, calendar.Cell(15), Rect{Left: 100, Top: 200})
	assert.Equal(t, hovering, Enter(hovering, 2024, 2, calendar.Cell(0), Rect{Left: 1, Top: 1}))
	assert.Equal(t, Idle, Enter(Idle, 2024, 2, calendar.Cell(0), Rect{}))
}

func TestLeave(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Idle, Leave(State{Hovering: true, Date: "x"}))
	assert.Equal(t, Idle, Leave(Idle))
}

func TestController_EnterLeaveEmpty(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 2024)
	c := NewController(g, fixedGeometry(Rect{Left: 100, Top: 200, Width: 2, Height: 1}))
	assert.Equal(t, Idle, c.State())

	c.OnPointerEnter(g.refFor(t, 2, 15))
	assert.Equal(t, State{Hovering: true, Date: "March 15", Position: Point{X: 101, Y: 201}}, c.State())

	c.OnPointerLeave()
	assert.Equal(t, Idle, c.State())

	// March 2024 starts on a Friday, so week 0 slot 0 is padding.
	c.OnPointerEnter(CellRef{Month: 2, Week: 0, Slot: 0})
	assert.Equal(t, Idle, c.State())
}

func TestController_EmptyCellDoesNotClearSiblingHover(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 2024)
	c := NewController(g, fixedGeometry(Rect{Left: 50, Top: 60}))

	c.OnPointerEnter(g.refFor(t, 2, 1))
	want := c.State()
	require.True(t, want.Hovering)

	c.OnPointerEnter(CellRef{Month: 2, Week: 0, Slot: 0})
	assert.Equal(t, want, c.State())
}

func TestController_MostRecentEventWins(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 2023)
	geom := func(ref CellRef) (Rect, bool) {
		return Rect{Left: ref.Slot * 3, Top: ref.Week, Width: 2, Height: 1}, true
	}
	c := NewController(g, geom)

	c.OnPointerEnter(g.refFor(t, 0, 1))
	c.OnPointerEnter(g.refFor(t, 11, 31))

	ref := g.refFor(t, 11, 31)
	assert.Equal(t, "December 31", c.State().Date)
	assert.Equal(t, Point{X: ref.Slot*3 + 1, Y: ref.Week + 1}, c.State().Position)
}

func TestController_IgnoresUnresolvableRefs(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 2024)
	offscreen := func(CellRef) (Rect, bool) { return Rect{}, false }
	c := NewController(g, offscreen)

	c.OnPointerEnter(g.refFor(t, 0, 10))
	assert.Equal(t, Idle, c.State())

	c.Reset(g, fixedGeometry(Rect{}))
	c.OnPointerEnter(CellRef{Month: 13})
	c.OnPointerEnter(CellRef{Month: 0, Week: 99})
	assert.Equal(t, Idle, c.State())

	var zero Controller
	zero.OnPointerEnter(CellRef{})
	zero.OnPointerLeave()
	assert.Equal(t, Idle, zero.State())
}

func TestController_ResetClearsHover(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 2024)
	c := NewController(g, fixedGeometry(Rect{}))
	c.OnPointerEnter(g.refFor(t, 6, 4))
	require.True(t, c.State().Hovering)

	c.Reset(newTestGrid(t, 2025), fixedGeometry(Rect{}))
	assert.Equal(t, Idle, c.State())
}

func TestRect_Contains(t *testing.T) {
	t.Parallel()

	r := Rect{Left: 10, Top: 5, Width: 2, Height: 1}
	assert.True(t, r.Contains(10, 5))
	assert.True(t, r.Contains(11, 5))
	assert.False(t, r.Contains(12, 5))
	assert.False(t, r.Contains(10, 6))
	assert.False(t, r.Contains(9, 5))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "February 29", FormatDate(2024, 1, 29))
	assert.Equal(t, "January 1", FormatDate(2025, 0, 1))
}
