package hover

import "github.com/fchimpan/gh-kusa-graph/internal/calendar"

// Grid resolves cell references for one year.
type Grid interface {
	Year() int
	CellAt(ref CellRef) (calendar.Cell, bool)
}

// Geometry reports where a cell is drawn. ok is false when the cell is not on
// screen.
type Geometry func(ref CellRef) (r Rect, ok bool)

// Controller owns the hover state of one view. Events must be delivered
// sequentially; the state always reflects the most recent one.
type Controller struct {
	grid  Grid
	geom  Geometry
	state State
}

func NewController(grid Grid, geom Geometry) *Controller {
	return &Controller{grid: grid, geom: geom}
}

// OnPointerEnter handles the pointer entering ref. Refs that do not resolve to
// a day cell on screen are ignored.
func (c *Controller) OnPointerEnter(ref CellRef) {
	if c.grid == nil || c.geom == nil {
		return
	}
	cell, ok := c.grid.CellAt(ref)
	if !ok || cell.Empty() {
		return
	}
	r, ok := c.geom(ref)
	if !ok {
		return
	}
	c.state = Enter(c.state, c.grid.Year(), ref.Month, cell, r)
}

func (c *Controller) OnPointerLeave() {
	c.state = Leave(c.state)
}

func (c *Controller) State() State {
	return c.state
}

// Reset drops any tooltip and rebinds the controller, e.g. after a year change.
func (c *Controller) Reset(grid Grid, geom Geometry) {
	c.grid = grid
	c.geom = geom
	c.state = Idle
}
