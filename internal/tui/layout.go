package tui

import (
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/hover"
)

// Month block geometry, in terminal cells. A block is a title line, a weekday
// header and up to six week rows; each day is cellW wide with a gap after it.
const (
	cellW      = 2
	cellGap    = 1
	slotW      = cellW + cellGap
	blockW     = 7*slotW - cellGap
	blockGapX  = 3
	blockGapY  = 1
	headerRows = 2
	maxWeeks   = 6
	blockH     = headerRows + maxWeeks
	maxPerRow  = 6
)

type point struct{ x, y int }

// Layout places a year's month blocks on screen and answers geometry and
// hit-test queries in screen coordinates.
type Layout struct {
	view    *graph.YearView
	origin  point
	perRow  int
	rows    int
	blocks  [12]point
	visible bool
}

// NewLayout lays out view with its top-left corner at (x, y), fitting as many
// months per row as width allows.
func NewLayout(view *graph.YearView, x, y, width int) Layout {
	perRow := (width + blockGapX) / (blockW + blockGapX)
	perRow = min(max(perRow, 1), maxPerRow)

	l := Layout{
		view:    view,
		origin:  point{x, y},
		perRow:  perRow,
		rows:    (12 + perRow - 1) / perRow,
		visible: view != nil,
	}
	for m := range l.blocks {
		col := m % perRow
		row := m / perRow
		l.blocks[m] = point{
			x: x + col*(blockW+blockGapX),
			y: y + row*(blockH+blockGapY),
		}
	}
	return l
}

// Width is the total width of the month blocks.
func (l Layout) Width() int {
	return l.perRow*(blockW+blockGapX) - blockGapX
}

// Height is the total height of the month blocks.
func (l Layout) Height() int {
	return l.rows*(blockH+blockGapY) - blockGapY
}

func (l Layout) cellOrigin(ref hover.CellRef) point {
	b := l.blocks[ref.Month]
	return point{x: b.x + ref.Slot*slotW, y: b.y + headerRows + ref.Week}
}

// Geometry reports the screen rectangle of ref. It satisfies hover.Geometry.
func (l Layout) Geometry(ref hover.CellRef) (hover.Rect, bool) {
	if !l.visible {
		return hover.Rect{}, false
	}
	if _, ok := l.view.CellAt(ref); !ok {
		return hover.Rect{}, false
	}
	p := l.cellOrigin(ref)
	return hover.Rect{Left: p.x, Top: p.y, Width: cellW, Height: 1}, true
}

// HitTest returns the grid slot under (x, y). Gaps between cells, headers and
// slots past a month's last day are misses; leading padding slots are hits.
func (l Layout) HitTest(x, y int) (hover.CellRef, bool) {
	if !l.visible {
		return hover.CellRef{}, false
	}
	for m, b := range l.blocks {
		dx := x - b.x
		dy := y - b.y - headerRows
		if dx < 0 || dx >= blockW || dy < 0 || dy >= maxWeeks {
			continue
		}
		ref := hover.CellRef{Month: m, Week: dy, Slot: dx / slotW}
		r, ok := l.Geometry(ref)
		if !ok || !r.Contains(x, y) {
			return hover.CellRef{}, false
		}
		return ref, true
	}
	return hover.CellRef{}, false
}
