package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each request, including reading the body.
	Timeout  time.Duration
	Recorder *metrics.Recorder
}

// Client fetches stats.nba.com endpoints and decodes them into frames.
type Client struct {
	baseURL    string
	httpClient httpDoer
	timeout    time.Duration
	recorder   *metrics.Recorder
}

var _ providers.StatsProvider = (*Client)(nil)

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		timeout:    resolveTimeout(cfg.Timeout),
		recorder:   cfg.Recorder,
	}
}

// Name identifies the upstream in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

func (c *Client) get(ctx context.Context, endpoint string, p params, decode func(io.Reader) (frame.Frame, error)) (frame.Frame, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.buildRequest(ctx, endpoint, p)
	if err != nil {
		return frame.Frame{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("%s: %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		c.recorder.RecordRateLimit(providerName, retryAfter)
		return frame.Frame{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
			Message:    endpoint + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return frame.Frame{}, &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	f, err := decode(resp.Body)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("%s: %s: %w", providerName, endpoint, err)
	}
	return f, nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, p params) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = p.values().Encode()
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

// TeamGameLogs returns one row per team per game played in season since dateFrom
// (MM/DD/YYYY, empty for the whole season). An empty measure selects the base box score.
func (c *Client) TeamGameLogs(ctx context.Context, season, dateFrom, measure string) (frame.Frame, error) {
	return c.get(ctx, endpointTeamGameLogs, teamGameLogsParams(season, dateFrom, measure), decodeResultSet)
}

// BoxScoreTraditional returns the traditional player box score of a game.
func (c *Client) BoxScoreTraditional(ctx context.Context, gameID string) (frame.Frame, error) {
	return c.get(ctx, endpointBoxScoreTraditional, boxScoreParams(gameID), func(r io.Reader) (frame.Frame, error) {
		return decodeBoxScoreV3(r, "boxScoreTraditional")
	})
}

// BoxScoreAdvanced returns the advanced player box score of a game.
func (c *Client) BoxScoreAdvanced(ctx context.Context, gameID string) (frame.Frame, error) {
	return c.get(ctx, endpointBoxScoreAdvanced, boxScoreParams(gameID), func(r io.Reader) (frame.Frame, error) {
		return decodeBoxScoreV3(r, "boxScoreAdvanced")
	})
}

// LeagueDashPlayerStats returns the player dashboard for a measure and per mode.
func (c *Client) LeagueDashPlayerStats(ctx context.Context, season, measure, perMode string) (frame.Frame, error) {
	return c.get(ctx, endpointPlayerStats, playerStatsParams(season, measure, perMode), decodeResultSet)
}

// LeagueDashPlayerPtShot returns season shooting totals with two-point attempts split out.
func (c *Client) LeagueDashPlayerPtShot(ctx context.Context, season string) (frame.Frame, error) {
	return c.get(ctx, endpointPlayerPtShot, playerPtShotParams(season), decodeResultSet)
}

// LeagueDashPlayerBioStats returns player biographical data.
func (c *Client) LeagueDashPlayerBioStats(ctx context.Context, season string) (frame.Frame, error) {
	return c.get(ctx, endpointPlayerBioStats, playerBioStatsParams(season), decodeResultSet)
}

// LeagueDashTeamStats returns the team dashboard for a measure.
func (c *Client) LeagueDashTeamStats(ctx context.Context, season, measure string) (frame.Frame, error) {
	return c.get(ctx, endpointTeamStats, teamStatsParams(season, measure), decodeResultSet)
}
