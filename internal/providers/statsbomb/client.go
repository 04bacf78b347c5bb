package statsbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/providers"
)

// Config controls how the client reaches the open-data repository.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client reads the StatsBomb open-data JSON files and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a StatsBomb client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchCompetitions lists every competition season in the dataset.
func (c *Client) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	var payload []competitionResponse
	if err := c.getJSON(ctx, "/competitions.json", &payload); err != nil {
		return nil, err
	}
	out := make([]competitions.Competition, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapCompetition(item))
	}
	return out, nil
}

// FetchMatches lists the matches of one competition season.
func (c *Client) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	var payload []matchResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID), &payload); err != nil {
		return nil, err
	}
	out := make([]matches.Match, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapMatch(item))
	}
	return out, nil
}

// FetchEvents returns the full event stream of a match in published order.
func (c *Client) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	var payload []eventResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/events/%d.json", matchID), &payload); err != nil {
		return nil, err
	}
	out := make([]events.Event, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapEvent(item))
	}
	return out, nil
}

// FetchLineups returns both team sheets of a match.
func (c *Client) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	var payload []lineupResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/lineups/%d.json", matchID), &payload); err != nil {
		return nil, err
	}
	out := make([]lineups.TeamLineup, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapLineup(item))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", providerName, path, providers.ErrNotFound)
	case http.StatusTooManyRequests, http.StatusForbidden:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    msg,
		}
	default:
		return &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       msg,
		}
	}
}
