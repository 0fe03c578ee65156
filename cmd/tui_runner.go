package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/tui"
)

func defaultRunTUI(login string, view *graph.YearView, provider activity.Provider) error {
	p := tea.NewProgram(
		tui.NewModel(login, view, provider),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
