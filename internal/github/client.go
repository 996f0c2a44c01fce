// Package github provides a client for fetching pull request data from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// TimeFormat is the timestamp format used by the GitHub API for created_at and updated_at.
const TimeFormat = "2006-01-02T15:04:05Z"

// Client fetches pull request data for a single repository
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	now        func() time.Time
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used for GitHub Enterprise and tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithClock overrides the wall-clock source used by TimeOpen
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new client for the given repository. When token is
// non-empty the client authenticates requests with it; unauthenticated
// clients work for public repositories.
func NewClient(ctx context.Context, owner, repo, token string, opts ...Option) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    "https://api.github.com",
		owner:      owner,
		repo:       repo,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Owner returns the configured repository owner
func (c *Client) Owner() string { return c.owner }

// Repo returns the configured repository name
func (c *Client) Repo() string { return c.repo }

// FetchJSON issues a single GET against url and decodes the response body
// into v. Any response status other than 200 is reported as a *FetchError;
// there is no retry and no partial result.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	slog.Debug("GitHub API: GET", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only response body

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

// TimeOpen returns how long a pull request created at createdAt has been
// open, measured against the client's clock at call time.
func (c *Client) TimeOpen(createdAt time.Time) time.Duration {
	return c.now().Sub(createdAt)
}
