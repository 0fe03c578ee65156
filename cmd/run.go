package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gosuri/uitable"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
	"github.com/fchimpan/gh-kusa-graph/internal/config"
	"github.com/fchimpan/gh-kusa-graph/internal/export"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/tui"
)

// plainWidth is the render width used for --plain output.
const plainWidth = 160

type options struct {
	year   int
	user   string
	source string
	seed   uint64

	htmlPath string
	stats    bool
	plain    bool
}

func (o options) interactive() bool {
	return o.htmlPath == "" && !o.stats && !o.plain
}

func newProvider(deps Deps, o options) (activity.Provider, string, error) {
	if o.source == config.SourceMock {
		return activity.Seeded{Seed: o.seed}, "mock", nil
	}
	if deps.NewGitHubProvider == nil {
		return nil, "", fmt.Errorf("deps.NewGitHubProvider is nil")
	}
	return deps.NewGitHubProvider(o.user), o.user, nil
}

func run(ctx context.Context, deps Deps, o options) error {
	if o.interactive() && deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}

	provider, login, err := newProvider(deps, o)
	if err != nil {
		return err
	}

	series, err := provider.Series(ctx, o.year)
	if err != nil {
		return fmt.Errorf("failed to fetch contributions: %w", err)
	}
	view, err := graph.New(o.year, series)
	if err != nil {
		return fmt.Errorf("failed to build %d: %w", o.year, err)
	}
	if lp, ok := provider.(interface{ Login() string }); ok && lp.Login() != "" {
		login = lp.Login()
	}

	if o.interactive() {
		return deps.RunTUI(login, view, provider)
	}

	if o.htmlPath != "" {
		if err := writeHTML(deps, o.htmlPath, login, view); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "heatmap written to %s\n", o.htmlPath)
	}
	if o.plain {
		fmt.Fprint(deps.Stdout, tui.RenderYear(view, plainWidth))
	}
	if o.stats {
		printStats(deps.Stdout, view)
	}
	return nil
}

func writeHTML(deps Deps, path, login string, view *graph.YearView) error {
	if deps.CreateFile == nil {
		return fmt.Errorf("deps.CreateFile is nil")
	}
	f, err := deps.CreateFile(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	title := fmt.Sprintf("%d contributions", view.Year())
	if login != "" {
		title = fmt.Sprintf("%s: %s", login, title)
	}
	if err := export.WriteHTML(f, view, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStats(w io.Writer, view *graph.YearView) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("MONTH", "TOTAL", "ACTIVE DAYS", "BUSIEST DAY")
	for _, st := range view.Stats() {
		busiest := "-"
		if st.BusiestDay > 0 {
			busiest = fmt.Sprintf("%s %d (%d)", calendar.ShortMonthName(st.Month), st.BusiestDay, st.BusiestMax)
		}
		tbl.AddRow(calendar.MonthName(st.Month), st.Total, st.ActiveDays, busiest)
	}
	tbl.AddRow("TOTAL", view.Total(), "", "")
	fmt.Fprintln(w, tbl)
}
