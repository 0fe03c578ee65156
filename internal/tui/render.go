package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/hover"
	"github.com/fchimpan/gh-kusa-graph/internal/mapping"
)

// ===== Render helpers (cached styles) =====

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleHudErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72"))

	styleMonth   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleWeekday = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleTooltip = lipgloss.NewStyle().Bold(true).
			Background(lipgloss.Color("#24292f")).
			Foreground(lipgloss.Color("#ffffff"))

	// One style per intensity level. Darker greens get light text.
	levelStyles = func() [mapping.MaxLevel + 1]lipgloss.Style {
		var out [mapping.MaxLevel + 1]lipgloss.Style
		for l := range out {
			fg := "#24292f"
			if mapping.Level(l) >= 3 {
				fg = "#f0f0f0"
			}
			out[l] = lipgloss.NewStyle().
				Background(lipgloss.Color(string(mapping.Palette[l]))).
				Foreground(lipgloss.Color(fg))
		}
		return out
	}()

	// colorStyles keys levelStyles by palette color.
	colorStyles = func() map[mapping.Color]lipgloss.Style {
		out := make(map[mapping.Color]lipgloss.Style, len(mapping.Palette))
		for l, c := range mapping.Palette {
			out[c] = levelStyles[l]
		}
		return out
	}()
)

type canvasBuf struct {
	w     int
	h     int
	cells []string // flat: y*w + x
}

func (c *canvasBuf) Reset() {
	c.w = 0
	c.h = 0
	c.cells = nil
}

func (c *canvasBuf) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.Reset()
		return
	}
	n := w * h
	if c.w == w && c.h == h && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.w = w
	c.h = h
	c.cells = make([]string, n)
}

func (c *canvasBuf) Fill(cell string) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

func (c *canvasBuf) Set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

// Text writes s one styled rune per cell starting at (x, y).
func (c *canvasBuf) Text(x, y int, s string, st lipgloss.Style) {
	i := 0
	for _, r := range s {
		c.Set(x+i, y, st.Render(string(r)))
		i++
	}
}

func (c *canvasBuf) writeLines(out *bytes.Buffer) {
	for y := 0; y < c.h; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		for _, cell := range row {
			out.WriteString(cell)
		}
		out.WriteByte('\n')
	}
}

func weekdayHeader() string {
	parts := make([]string, len(calendar.WeekdayNames))
	for i, n := range calendar.WeekdayNames {
		parts[i] = n[:cellW]
	}
	return strings.Join(parts, strings.Repeat(" ", cellGap))
}

// drawYear paints every month block of l onto c.
func drawYear(c *canvasBuf, v *graph.YearView, l Layout) {
	header := weekdayHeader()
	for m, b := range l.blocks {
		title := calendar.ShortMonthName(m)
		c.Text(b.x+(blockW-len(title))/2, b.y, title, styleMonth)
		c.Text(b.x, b.y+1, header, styleWeekday)

		g := v.Grid(m)
		for wi, w := range g.Weeks {
			for si, cell := range w {
				if cell.Empty() {
					continue
				}
				col, err := v.ColorAt(m, int(cell))
				if err != nil {
					continue
				}
				p := l.cellOrigin(hover.CellRef{Month: m, Week: wi, Slot: si})
				c.Text(p.x, p.y, fmt.Sprintf("%2d", int(cell)), colorStyles[col])
			}
		}
	}
}

// drawTooltip paints s at the tooltip position, shifted left if it would run
// off the right edge.
func drawTooltip(c *canvasBuf, s hover.State) {
	if !s.Hovering {
		return
	}
	text := " " + s.Date + " "
	x := s.Position.X
	if over := x + len(text) - c.w; over > 0 {
		x = max(x-over, 0)
	}
	c.Text(x, s.Position.Y, text, styleTooltip)
}

// renderLegend returns the swatch legend; labels are dropped when it would be
// wider than width.
func renderLegend(width int) string {
	var full, compact []string
	for l := mapping.Level(0); l <= mapping.MaxLevel; l++ {
		sw := levelStyles[l].Render("  ")
		full = append(full, sw+" "+styleHudLabel.Render(l.Label()))
		compact = append(compact, sw)
	}
	line := strings.Join(full, "   ")
	if lipgloss.Width(line) <= width {
		return line
	}
	return styleHudLabel.Render("Less ") + strings.Join(compact, " ") + styleHudLabel.Render(" More")
}

func renderHUD(login string, year, total int) string {
	sep := styleHudDim.Render("  |  ")
	if login == "" {
		login = "-"
	}
	return strings.Join([]string{
		styleHudLabel.Render("user ") + styleHudValue.Render(login),
		sep,
		styleHudLabel.Render("year ") + styleHudValue.Render(fmt.Sprintf("%d", year)),
		sep,
		styleHudLabel.Render("contributions ") + styleHudScore.Render(fmt.Sprintf("%d", total)),
		styleHudDim.Render("  (←/→ h/l year, esc hide, q quit)"),
	}, "")
}

// RenderYear renders v without any interaction, for non-interactive output.
func RenderYear(v *graph.YearView, width int) string {
	l := NewLayout(v, 0, 0, width)
	var c canvasBuf
	c.Resize(l.Width(), l.Height())
	c.Fill(" ")
	drawYear(&c, v, l)

	var b bytes.Buffer
	c.writeLines(&b)
	b.WriteByte('\n')
	b.WriteString(renderLegend(width))
	b.WriteByte('\n')
	return b.String()
}
