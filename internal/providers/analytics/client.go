package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Config controls how the analytics client reaches the upstream backend.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches precomputed fantasy analytics and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	group      singleflight.Group
}

// NewClient constructs an analytics client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the client in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchRankings retrieves the league-wide value rankings.
func (c *Client) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	var rows []playerRow
	if err := c.getJSON(ctx, "/nba/rankings", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]rankings.Entity, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapEntity(r))
	}
	return out, nil
}

// FetchConsistency retrieves one player's consistency grade and volatility.
// Concurrent requests for the same player share one upstream call.
func (c *Client) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	v, err, _ := c.group.Do(strconv.Itoa(playerID), func() (interface{}, error) {
		return c.fetchConsistency(context.WithoutCancel(ctx), playerID)
	})
	if err != nil {
		return consistency.Record{}, err
	}
	return v.(consistency.Record), nil
}

func (c *Client) fetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	var payload consistencyResponse
	path := fmt.Sprintf("/nba/player/%d/consistency", playerID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return consistency.Record{}, err
	}
	if payload.Grade == "" {
		msg := payload.Message
		if msg == "" {
			msg = noGamesMessage
		}
		return consistency.Record{}, fmt.Errorf("%s: player %d: %s: %w", providerName, playerID, msg, providers.ErrNotFound)
	}
	return mapRecord(playerID, payload), nil
}

// FetchSchedule retrieves the requested matchup period, flagging the highlighted team's matchup.
func (c *Client) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	window := q.Window
	if window == "" {
		window = schedule.WindowCurrent
	}
	query := url.Values{}
	if q.Highlight != 0 {
		query.Set("my_team_id", strconv.Itoa(q.Highlight))
	}
	var payload scheduleResponse
	if err := c.getJSON(ctx, "/schedule/"+string(window), query, &payload); err != nil {
		return schedule.Page{}, err
	}
	return mapPage(payload), nil
}

// FetchTeams retrieves the league's fantasy teams.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, "/league/teams", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(payload))
	for _, t := range payload {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchRoster retrieves the players on one fantasy team.
func (c *Client) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	body, err := c.get(ctx, fmt.Sprintf("/team/%d/roster", teamID), nil)
	if err != nil {
		return nil, err
	}
	payload, err := decodeRoster(body)
	if err != nil {
		return nil, providers.Unavailable(providerName, err)
	}
	out := make([]teams.RosterPlayer, 0, len(payload))
	for _, p := range payload {
		out = append(out, mapRosterPlayer(p))
	}
	return out, nil
}

// FetchStandings retrieves the league table and the league's name and season.
// A league info endpoint answering 404 leaves the league fields empty.
func (c *Client) FetchStandings(ctx context.Context) (teams.Standings, error) {
	var rows []standingResponse
	if err := c.getJSON(ctx, "/league/standings", nil, &rows); err != nil {
		return teams.Standings{}, err
	}
	var info leagueInfoResponse
	if err := c.getJSON(ctx, "/league/info", nil, &info); err != nil && !errors.Is(err, providers.ErrNotFound) {
		return teams.Standings{}, err
	}
	return mapStandings(info, rows), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return providers.Unavailable(providerName, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return nil, providers.Unavailable(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, providers.Unavailable(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, statusError(path, resp, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.Unavailable(providerName, err)
	}
	return body, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func statusError(path string, resp *http.Response, body string) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", providerName, path, providers.ErrNotFound)
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    body,
		}
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %s: %w", providerName, path, resp.StatusCode, body, providers.ErrDataUnavailable)
	}
}

var _ providers.DataSource = (*Client)(nil)
