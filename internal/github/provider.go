package github

import (
	"context"
	"fmt"
	"time"

	"github.com/fchimpan/gh-kusa-graph/internal/activity"
	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
)

const dateLayout = "2006-01-02"

// SeriesFromCalendar flattens a contribution calendar into year's activity
// series. Days outside year are skipped and days GitHub did not return count
// as zero.
func SeriesFromCalendar(cal Calendar, year int) (activity.Series, error) {
	s := make(activity.Series, calendar.DaysInYear(year))
	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			t, err := time.Parse(dateLayout, d.Date)
			if err != nil {
				return nil, fmt.Errorf("invalid contribution date %q: %w", d.Date, err)
			}
			if t.Year() != year {
				continue
			}
			idx, err := calendar.DayOfYearIndex(year, int(t.Month())-1, t.Day())
			if err != nil {
				return nil, err
			}
			s[idx] = max(d.ContributionCount, 0)
		}
	}
	return s, nil
}

// Provider serves activity series from GitHub contributions. An empty User
// means the authenticated viewer.
type Provider struct {
	User string

	FetchViewer func(ctx context.Context, year int) (string, Calendar, error)
	FetchUser   func(ctx context.Context, login string, year int) (string, Calendar, error)

	login string
}

// NewProvider returns a Provider backed by the live GitHub API.
func NewProvider(user string) *Provider {
	return &Provider{
		User:        user,
		FetchViewer: FetchViewerContributionYear,
		FetchUser:   FetchUserContributionYear,
	}
}

// Login returns the login resolved by the most recent successful fetch.
func (p *Provider) Login() string {
	if p.login != "" {
		return p.login
	}
	return p.User
}

func (p *Provider) Series(ctx context.Context, year int) (activity.Series, error) {
	var (
		login string
		cal   Calendar
		err   error
	)
	if p.User != "" {
		if p.FetchUser == nil {
			return nil, fmt.Errorf("github provider: FetchUser is nil")
		}
		login, cal, err = p.FetchUser(ctx, p.User, year)
	} else {
		if p.FetchViewer == nil {
			return nil, fmt.Errorf("github provider: FetchViewer is nil")
		}
		login, cal, err = p.FetchViewer(ctx, year)
	}
	if err != nil {
		return nil, err
	}
	s, err := SeriesFromCalendar(cal, year)
	if err != nil {
		return nil, err
	}
	p.login = login
	return s, nil
}
