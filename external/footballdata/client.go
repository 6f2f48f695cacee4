package footballdata

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL   = "https://api.football-data.org/v4"
	defaultUserAgent = "Soccer-Stats-Tracker/1.0"
	maxResponseBytes = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Timeout bounds one call. Zero leaves the deadline to the request context.
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client talks to the football-data.org v4 API. It makes exactly one request
// per call and never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logging.Logger
}

var _ match.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

func (c *Client) FetchMatches(ctx context.Context, credential string, params match.FetchParams) ([]match.UpstreamMatch, error) {
	query := url.Values{}
	if len(params.Competitions) > 0 {
		query.Set("competitions", strings.Join(params.Competitions, ","))
	}
	if params.DateFrom != "" {
		query.Set("dateFrom", params.DateFrom)
	}
	if params.DateTo != "" {
		query.Set("dateTo", params.DateTo)
	}

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, credential, "/matches", query, &envelope); err != nil {
		return nil, crerr.Wrap(err, "fetch matches")
	}

	out := make([]match.UpstreamMatch, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		out = append(out, item.toUpstream())
	}
	return out, nil
}

// FetchMatch returns false when the provider answers 2xx without a match record.
func (c *Client) FetchMatch(ctx context.Context, credential, id string) (match.UpstreamMatch, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return match.UpstreamMatch{}, false, nil
	}

	var envelope matchEnvelope
	if err := c.doJSON(ctx, credential, "/matches/"+url.PathEscape(id), nil, &envelope); err != nil {
		return match.UpstreamMatch{}, false, crerr.Wrapf(err, "fetch match id=%s", id)
	}

	record := envelope.matchDTO
	if envelope.Match != nil {
		record = *envelope.Match
	}
	if record.ID == 0 {
		return match.UpstreamMatch{}, false, nil
	}
	return record.toUpstream(), true, nil
}

func (c *Client) doJSON(ctx context.Context, credential, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	c.logger.DebugContext(ctx, "football-data request", "curl", buildCurlPreview(fullURL, c.userAgent))

	raw, err := c.executeRequest(ctx, credential, fullURL)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "decode provider payload"), match.ErrUpstreamTransport)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, credential, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "build request"), match.ErrUpstreamTransport)
	}
	req.Header.Set("X-Auth-Token", credential)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cause := crerr.Newf("send request: %s", sanitizeSensitiveText(err.Error(), credential))
		c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", cause)
		return nil, crerr.Mark(cause, match.ErrUpstreamTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), match.ErrUpstreamTransport)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &match.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       sanitizeSensitiveText(abbreviateBody(raw), credential),
		}
		c.logger.WarnContext(ctx, "football-data non-success status", "url", fullURL, "status", resp.StatusCode)
		return nil, statusErr
	}

	return raw, nil
}

func sanitizeSensitiveText(value, credential string) string {
	value = strings.TrimSpace(value)
	if value == "" || credential == "" {
		return value
	}
	return strings.ReplaceAll(value, credential, "REDACTED")
}

const maxBodyPreview = 240

// abbreviateBody cuts at a rune boundary so the preview stays valid UTF-8.
func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxBodyPreview {
		return text
	}
	cut := maxBodyPreview
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
