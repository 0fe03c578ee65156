package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// Day is a single day entry from GitHub's Contribution Calendar.
// date is returned as "YYYY-MM-DD" (GitHub GraphQL).
type Day struct {
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	ContributionCount int    `json:"contributionCount"`
}

type Week struct {
	ContributionDays []Day `json:"contributionDays"`
}

type Calendar struct {
	Weeks []Week `json:"weeks"`
}

const calendarFields = `
      contributionCalendar {
        weeks {
          contributionDays {
            date
            weekday
            contributionCount
          }
        }
      }`

const viewerQuery = `
query($from: DateTime!, $to: DateTime!) {
  viewer {
    login
    contributionsCollection(from: $from, to: $to) {` + calendarFields + `
    }
  }
}`

const userQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    login
    contributionsCollection(from: $from, to: $to) {` + calendarFields + `
    }
  }
}`

type contributions struct {
	Login                   string `json:"login"`
	ContributionsCollection struct {
		ContributionCalendar Calendar `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

// launch is GitHub's launch date; earlier dates are not meaningful for contributions.
// Ref: https://github.blog/news-insights/we-launched/
var launch = time.Date(2008, 4, 10, 0, 0, 0, 0, time.UTC)

// yearRange returns [Jan 1 00:00:00, Dec 31 23:59:59] UTC of year.
func yearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

func validateYear(year int) error {
	_, to := yearRange(year)
	if to.Before(launch) {
		return fmt.Errorf("year %d is before GitHub launched (2008-04-10)", year)
	}
	return nil
}

// graphqlRequest sends a GraphQL request to GitHub's API using GITHUB_TOKEN
// (or GH_TOKEN). It backs the year queries whenever a token env var is set;
// a missing or rejected token is reported as *AuthError.
func graphqlRequest(ctx context.Context, query string, variables map[string]any, result any) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return &AuthError{Message: "GITHUB_TOKEN or GH_TOKEN environment variable is not set"}
	}

	payload := map[string]any{
		"query":     query,
		"variables": variables,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.github.com/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Message: "GitHub rejected the token (status 401)"}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var gqlResp struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	if err := json.Unmarshal(gqlResp.Data, result); err != nil {
		return fmt.Errorf("failed to parse data: %w", err)
	}

	return nil
}

// useTokenClient returns true if we should use the token-based client.
func useTokenClient() bool {
	return os.Getenv("GITHUB_TOKEN") != "" || os.Getenv("GH_TOKEN") != ""
}

// query runs a contributions query through the raw token client when a token
// env var is set, and through gh's stored credentials otherwise.
func query(ctx context.Context, q string, vars map[string]any, from, to time.Time, result any) error {
	if useTokenClient() {
		vars["from"] = from.UTC().Format(time.RFC3339)
		vars["to"] = to.UTC().Format(time.RFC3339)
		return graphqlRequest(ctx, q, vars, result)
	}

	client, err := api.DefaultGraphQLClient()
	if err != nil {
		return &AuthError{Message: err.Error()}
	}
	vars["from"] = from.UTC()
	vars["to"] = to.UTC()
	return client.DoWithContext(ctx, q, vars, result)
}

// FetchViewerContributionYear returns the logged-in user's login and contribution
// calendar for January 1st through December 31st of year.
func FetchViewerContributionYear(ctx context.Context, year int) (string, Calendar, error) {
	if err := validateYear(year); err != nil {
		return "", Calendar{}, err
	}
	from, to := yearRange(year)

	var resp struct {
		Viewer contributions `json:"viewer"`
	}
	if err := query(ctx, viewerQuery, map[string]any{}, from, to, &resp); err != nil {
		return "", Calendar{}, err
	}
	return resp.Viewer.Login, resp.Viewer.ContributionsCollection.ContributionCalendar, nil
}

// FetchUserContributionYear returns the given user's login and contribution
// calendar for year.
//
// Note: This still uses the GitHub GraphQL API and typically requires authentication.
func FetchUserContributionYear(ctx context.Context, login string, year int) (string, Calendar, error) {
	if login == "" {
		return "", Calendar{}, fmt.Errorf("user login must not be empty")
	}
	if err := validateYear(year); err != nil {
		return "", Calendar{}, err
	}
	from, to := yearRange(year)

	var resp struct {
		User *contributions `json:"user"`
	}
	if err := query(ctx, userQuery, map[string]any{"login": login}, from, to, &resp); err != nil {
		if isGraphQLUserNotFound(err) {
			return "", Calendar{}, &UserNotFoundError{Login: login, cause: err}
		}
		return "", Calendar{}, err
	}
	if resp.User == nil || resp.User.Login == "" {
		return "", Calendar{}, &UserNotFoundError{Login: login}
	}
	return resp.User.Login, resp.User.ContributionsCollection.ContributionCalendar, nil
}
