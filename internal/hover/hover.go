// Package hover turns pointer enter/leave events over grid cells into the
// tooltip state the renderer paints.
package hover

import (
	"time"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
)

type Point struct {
	X int
	Y int
}

// Rect is a cell's screen rectangle in renderer units (terminal cells for the TUI).
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// CellRef addresses one slot of a year's month grids.
type CellRef struct {
	Month int // 0=January
	Week  int
	Slot  int // 0=Sunday
}

// State is either idle (Hovering false) or a visible tooltip.
type State struct {
	Hovering bool
	Date     string
	Position Point
}

// Idle is the state with no tooltip.
var Idle = State{}

// tooltipOffset keeps the tooltip from covering the inspected cell's corner.
const tooltipOffset = 1

// Enter is the pure pointer-enter transition. Entering an empty cell leaves s
// unchanged.
func Enter(s State, year, month int, cell calendar.Cell, r Rect) State {
	if cell.Empty() {
		return s
	}
	return State{
		Hovering: true,
		Date:     FormatDate(year, month, int(cell)),
		Position: Point{X: r.Left + tooltipOffset, Y: r.Top + tooltipOffset},
	}
}

// Leave is the pure pointer-leave transition.
func Leave(State) State {
	return Idle
}

// FormatDate renders "<Month> <day>", e.g. "March 15".
func FormatDate(year, month, day int) string {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Format("January 2")
}
