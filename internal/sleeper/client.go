package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the API answers 404 for a resource.
var ErrNotFound = errors.New("sleeper: not found")

// Client provides access to the Sleeper read-only API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a Sleeper API client.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("sleeper base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  strings.TrimSpace(userAgent),
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// League fetches a league's settings and display name.
func (c *Client) League(ctx context.Context, leagueID string) (*League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, errors.New("league id must not be empty")
	}
	var league League
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID), &league); err != nil {
		return nil, err
	}
	if league.LeagueID == "" {
		league.LeagueID = leagueID
	}
	return &league, nil
}

// Drafts fetches a league's draft list, most recent first per the API's
// contract.
func (c *Client) Drafts(ctx context.Context, leagueID string) ([]Draft, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, errors.New("league id must not be empty")
	}
	var drafts []Draft
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/drafts", &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// Users fetches the league's member roster.
func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, errors.New("league id must not be empty")
	}
	var users []User
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Picks fetches a draft's pick list in draft-sequence order.
func (c *Client) Picks(ctx context.Context, draftID string) ([]Pick, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return nil, errors.New("draft id must not be empty")
	}
	var picks []Pick
	if err := c.get(ctx, "/draft/"+url.PathEscape(draftID)+"/picks", &picks); err != nil {
		return nil, err
	}
	return picks, nil
}

// Players fetches the full NFL player directory dump, keyed by player ID.
// The payload is several megabytes; callers should cache it.
func (c *Client) Players(ctx context.Context) (map[string]Player, error) {
	var players map[string]Player
	if err := c.get(ctx, "/players/nfl", &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
