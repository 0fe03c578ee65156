package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/config"
	"github.com/fchimpan/gh-kusa-graph/internal/github"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
)

type Deps struct {
	LoadConfig        func(path string) (config.Config, error)
	NewGitHubProvider func(user string) activity.Provider
	RunTUI            func(login string, view *graph.YearView, provider activity.Provider) error
	CreateFile        func(name string) (io.WriteCloser, error)
	Now               func() time.Time
	Stdout            io.Writer
	Stderr            io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewGitHubProvider: func(user string) activity.Provider {
			return github.NewProvider(user)
		},
		RunTUI: defaultRunTUI,
		CreateFile: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var hintColor = color.New(color.FgYellow)

func NewRootCmd(deps Deps) *cobra.Command {
	var (
		opts       options
		configPath string
	)

	c := &cobra.Command{
		Use:          "kusa-graph",
		Short:        "Show a yearly contribution heatmap in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{Source: config.SourceGitHub}
			if deps.LoadConfig != nil {
				loaded, err := deps.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if !flags.Changed("source") {
				opts.source = cfg.Source
			}
			if !flags.Changed("user") {
				opts.user = cfg.User
			}
			if !flags.Changed("seed") {
				opts.seed = cfg.Seed
			}
			if !flags.Changed("year") {
				opts.year = cfg.Year
			}
			if opts.year == 0 && deps.Now != nil {
				opts.year = deps.Now().Year()
			}
			if opts.year < 1 {
				return fmt.Errorf("--year must be >= 1")
			}
			if opts.source != config.SourceGitHub && opts.source != config.SourceMock {
				return fmt.Errorf("--source must be %q or %q", config.SourceGitHub, config.SourceMock)
			}

			if err := run(cmd.Context(), deps, opts); err != nil {
				if github.IsAuthError(err) {
					hintColor.Fprintln(deps.Stderr, "hint: set GITHUB_TOKEN (or GH_TOKEN), or log in with `gh auth login`")
				}
				return err
			}
			return nil
		},
	}

	c.Flags().IntVarP(&opts.year, "year", "y", 0, "calendar year to show (default: current year)")
	c.Flags().StringVarP(&opts.user, "user", "u", "", "GitHub username to use (default: authenticated user)")
	c.Flags().StringVarP(&opts.source, "source", "s", config.SourceGitHub, "activity source: github or mock")
	c.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the mock source")
	c.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: ~/.kusa-graph.yaml or ./.kusa-graph.yaml)")
	c.Flags().StringVar(&opts.htmlPath, "html", "", "write an HTML heatmap to this file instead of starting the UI")
	c.Flags().BoolVar(&opts.stats, "stats", false, "print per-month totals instead of starting the UI")
	c.Flags().BoolVar(&opts.plain, "plain", false, "print the heatmap without starting the UI")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

// Execute runs the root command with a background context.
func Execute(deps Deps) error {
	return NewRootCmd(deps).ExecuteContext(context.Background())
}
