package nbastats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL         string
	HeadshotBaseURL string
	LeagueID        string
	SeasonType      string
	Timeout         time.Duration
	HTTPClient      *http.Client
	Metrics         *metrics.Recorder
	Logger          *slog.Logger
}

// Client issues requests against the stats.nba.com endpoints and decodes their
// resultSets payloads.
type Client struct {
	baseURL      string
	headshotBase string
	leagueID     string
	seasonType   string
	httpClient   httpDoer
	metrics      *metrics.Recorder
	logger       *slog.Logger
	now          func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		headshotBase: normalizeBaseURL(cfg.HeadshotBaseURL, defaultHeadshotBaseURL),
		leagueID:     valueOrDefault(cfg.LeagueID, defaultLeagueID),
		seasonType:   valueOrDefault(cfg.SeasonType, defaultSeasonType),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		now:          time.Now,
	}
}

// ProfileStats returns the season-snapshot stats source backed by playerprofilev2.
func (c *Client) ProfileStats() *ProfileStats {
	return &ProfileStats{client: c}
}

// GameLogStats returns the game-log aggregation stats source backed by playergamelog.
func (c *Client) GameLogStats() *GameLogStats {
	return &GameLogStats{client: c}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (statsResponse, error) {
	start := time.Now()
	payload, err := c.fetch(ctx, endpoint, params)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(providerName+"."+endpoint, time.Since(start), err)
	}
	return payload, err
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (statsResponse, error) {
	req, err := c.buildRequest(ctx, endpoint, params)
	if err != nil {
		return statsResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, &providers.UpstreamError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"), c.now())
		if c.metrics != nil {
			c.metrics.RecordRateLimit(providerName+"."+endpoint, retryAfter)
		}
		return statsResponse{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
			Message:    endpoint + " rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return statsResponse{}, &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body: %s", strings.TrimSpace(string(snippet))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return statsResponse{}, &providers.UpstreamError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	return decodeResponse(endpoint, body)
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	applyBrowserHeaders(req.Header)
	return req, nil
}
