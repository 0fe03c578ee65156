package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/hover"
)

// fetchTimeout bounds a single provider call made from the UI.
const fetchTimeout = 30 * time.Second

// gridTop is the first screen row of the month blocks: HUD, info line, blank.
const gridTop = 3

type Model struct {
	login    string
	provider activity.Provider

	view   *graph.YearView
	layout Layout
	hover  *hover.Controller

	// The slot under the pointer, if any. Leave/Enter fire only when it changes.
	pointer    hover.CellRef
	hasPointer bool

	loadingYear int
	status      string
	statusErr   bool

	ready bool
	w     int
	h     int

	canvas  canvasBuf
	viewBuf bytes.Buffer
}

// NewModel starts the UI on view. provider is used to load other years.
func NewModel(login string, view *graph.YearView, provider activity.Provider) *Model {
	m := &Model{
		login:    login,
		provider: provider,
		view:     view,
	}
	m.hover = hover.NewController(view, m.geometry)
	return m
}

// geometry defers to the current layout so the controller survives resizes.
func (m *Model) geometry(ref hover.CellRef) (hover.Rect, bool) {
	return m.layout.Geometry(ref)
}

// HoverState exposes the current tooltip state.
func (m *Model) HoverState() hover.State {
	return m.hover.State()
}

type seriesMsg struct {
	year   int
	series activity.Series
	err    error
}

func loadYearCmd(p activity.Provider, year int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		s, err := p.Series(ctx, year)
		return seriesMsg{year: year, series: s, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		if m.w <= 0 || m.h <= 0 {
			// Detached or minimised; wait for a real size before drawing.
			m.ready = false
			m.clearPointer()
			return m, nil
		}
		m.rebuild()
		return m, nil
	case tea.MouseMsg:
		m.pointerAt(msg.X, msg.Y)
		return m, nil
	case seriesMsg:
		return m, m.applySeries(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h", "H":
			return m, m.changeYear(-1)
		case "right", "l", "L":
			return m, m.changeYear(1)
		case "esc":
			m.clearPointer()
		}
		return m, nil
	default:
		return m, nil
	}
}

// pointerAt translates a pointer position into leave/enter events on the
// hover controller.
func (m *Model) pointerAt(x, y int) {
	ref, ok := m.layout.HitTest(x, y)
	if ok && m.hasPointer && ref == m.pointer {
		return
	}
	m.clearPointer()
	if ok {
		m.pointer = ref
		m.hasPointer = true
		m.hover.OnPointerEnter(ref)
	}
}

func (m *Model) clearPointer() {
	if m.hasPointer {
		m.hover.OnPointerLeave()
	}
	m.pointer = hover.CellRef{}
	m.hasPointer = false
}

func (m *Model) changeYear(delta int) tea.Cmd {
	if m.view == nil || m.provider == nil || m.loadingYear != 0 {
		return nil
	}
	year := m.view.Year() + delta
	if year < 1 {
		return nil
	}
	m.loadingYear = year
	m.status = fmt.Sprintf("loading %d...", year)
	m.statusErr = false
	return loadYearCmd(m.provider, year)
}

func (m *Model) applySeries(msg seriesMsg) tea.Cmd {
	if msg.year != m.loadingYear {
		return nil
	}
	m.loadingYear = 0

	if msg.err != nil {
		m.status = fmt.Sprintf("failed to load %d: %v", msg.year, msg.err)
		m.statusErr = true
		return nil
	}
	v, err := graph.New(msg.year, msg.series)
	if err != nil {
		m.status = fmt.Sprintf("failed to load %d: %v", msg.year, err)
		m.statusErr = true
		return nil
	}

	m.view = v
	m.status = ""
	m.statusErr = false
	m.pointer = hover.CellRef{}
	m.hasPointer = false
	m.hover.Reset(v, m.geometry)
	m.rebuild()
	return nil
}

func (m *Model) rebuild() {
	if m.w <= 0 || m.view == nil {
		return
	}
	natural := NewLayout(m.view, 0, gridTop, m.w-2)
	leftPad := 0
	if m.w > natural.Width() {
		leftPad = (m.w - natural.Width()) / 2
	}
	m.layout = NewLayout(m.view, leftPad, gridTop, m.w-2)
	m.canvas.Reset()
	m.ready = true

	// The cell under a stationary pointer may have moved.
	m.clearPointer()
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf

	h := max(m.h, gridTop+m.layout.Height()+2)
	m.canvas.Resize(m.w, h)
	m.canvas.Fill(" ")

	drawYear(&m.canvas, m.view, m.layout)
	drawTooltip(&m.canvas, m.hover.State())

	hud := renderHUD(m.login, m.view.Year(), m.view.Total())
	info := styleHudDim.Render("hover a day to see its date")
	if m.status != "" {
		if m.statusErr {
			info = styleHudErr.Render(m.status)
		} else {
			info = styleHudDim.Render(m.status)
		}
	}
	legend := renderLegend(m.w - 2)

	lines := strings.Split(strings.TrimSuffix(m.canvasString(), "\n"), "\n")
	if len(lines) < gridTop {
		return "loading...\n"
	}
	lines[0] = centered(hud, m.w)
	lines[1] = centered(info, m.w)
	if i := gridTop + m.layout.Height() + 1; i < len(lines) {
		lines[i] = centered(legend, m.w)
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) canvasString() string {
	var out bytes.Buffer
	m.canvas.writeLines(&out)
	return out.String()
}

func centered(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
