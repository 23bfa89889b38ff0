package soccerdata

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/prasetyowira/matchday/internal/platform/logging"
	"github.com/prasetyowira/matchday/internal/usecase"
)

const (
	defaultBaseURL = "https://api.soccerdataapi.com/"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 6 << 20
)

var authTokenParamRegex = regexp.MustCompile(`auth_token=[^&\s"']+`)

// ErrMissingToken means no API credential was configured. Fatal at startup.
var ErrMissingToken = crerr.New("soccerdata auth token is not configured")

// ErrTransport marks network failures and non-JSON bodies.
var ErrTransport = crerr.New("soccerdata transport failure")

// StatusError is an upstream HTTP failure (status >= 400). Detail comes from
// the body's "detail" field when the provider sends one, else the body itself.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// IsUpstream reports whether err originated in this client, in any of its
// three classes. The HTTP facade maps all of them to 502.
func IsUpstream(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	return crerr.Is(err, ErrMissingToken) ||
		crerr.Is(err, ErrTransport) ||
		crerr.As(err, &statusErr)
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client issues single-attempt authenticated GETs against the soccerdata API.
// It is an explicitly constructed dependency; call sites receive it, nothing
// is process-global.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logging.Logger
}

var _ usecase.SportsData = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(defaultBaseURL, "/")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		logger:     logger,
	}
}

func (c *Client) Match(ctx context.Context, matchID int64) (usecase.RawDocument, error) {
	return c.get(ctx, "match/", url.Values{"match_id": {strconv.FormatInt(matchID, 10)}})
}

func (c *Client) MatchPreview(ctx context.Context, matchID int64) (usecase.RawDocument, error) {
	return c.get(ctx, "match-preview/", url.Values{"match_id": {strconv.FormatInt(matchID, 10)}})
}

func (c *Client) Standing(ctx context.Context, leagueID int64, season string) (usecase.RawDocument, error) {
	query := url.Values{"league_id": {strconv.FormatInt(leagueID, 10)}}
	if strings.TrimSpace(season) != "" {
		query.Set("season", strings.TrimSpace(season))
	}
	return c.get(ctx, "standing/", query)
}

func (c *Client) HeadToHead(ctx context.Context, team1ID, team2ID int64) (usecase.RawDocument, error) {
	return c.get(ctx, "head-to-head/", url.Values{
		"team_1_id": {strconv.FormatInt(team1ID, 10)},
		"team_2_id": {strconv.FormatInt(team2ID, 10)},
	})
}

func (c *Client) UpcomingPreviews(ctx context.Context) (usecase.RawDocument, error) {
	return c.get(ctx, "match-previews-upcoming/", nil)
}

func (c *Client) MatchesByLeague(ctx context.Context, leagueID int64, season, date string) (usecase.RawDocument, error) {
	query := url.Values{"league_id": {strconv.FormatInt(leagueID, 10)}}
	if strings.TrimSpace(season) != "" {
		query.Set("season", strings.TrimSpace(season))
	}
	if strings.TrimSpace(date) != "" {
		query.Set("date", strings.TrimSpace(date))
	}
	return c.get(ctx, "matches/", query)
}

// get performs one attempt against endpoint. No retries: the caller decides
// whether absence of data is fatal or just a missing report section.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (usecase.RawDocument, error) {
	if c.token == "" {
		return usecase.RawDocument{}, ErrMissingToken
	}

	values := url.Values{}
	for key, items := range query {
		for _, item := range items {
			values.Add(key, item)
		}
	}
	values.Set("auth_token", c.token)

	fullURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return usecase.RawDocument{}, crerr.Wrapf(err, "build request for %s", endpoint)
	}
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := crerr.Wrapf(ErrTransport, "send request: %s", c.sanitize(err.Error()))
		c.logger.WarnContext(ctx, "soccerdata request failed", "url", redactAPIURL(fullURL), "error", wrapped)
		return usecase.RawDocument{}, wrapped
	}
	defer func() { _ = resp.Body.Close() }()

	// Setting Accept-Encoding ourselves turns off the Transport's transparent
	// gzip handling, so a compressed body arrives verbatim and must be
	// decoded here.
	body := io.Reader(resp.Body)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return usecase.RawDocument{}, crerr.Wrapf(ErrTransport, "open gzip body: %v", err)
		}
		defer func() { _ = gz.Close() }()
		body = gz
	}

	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return usecase.RawDocument{}, crerr.Wrapf(ErrTransport, "read response body: %v", err)
	}

	var data map[string]any
	decodeErr := sonic.Unmarshal(raw, &data)

	if resp.StatusCode >= http.StatusBadRequest {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(data, raw),
		}
		c.logger.WarnContext(ctx, "soccerdata upstream error",
			"url", redactAPIURL(fullURL),
			"status", resp.StatusCode,
			"detail", statusErr.Detail,
		)
		return usecase.RawDocument{}, statusErr
	}

	if decodeErr != nil {
		return usecase.RawDocument{}, crerr.Wrapf(ErrTransport, "invalid JSON from %s: %v", endpoint, decodeErr)
	}

	return usecase.RawDocument{Raw: raw, Data: data}, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return authTokenParamRegex.ReplaceAllString(value, "auth_token=REDACTED")
}

func extractDetail(data map[string]any, raw []byte) string {
	if data != nil {
		if detail, ok := data["detail"].(string); ok && strings.TrimSpace(detail) != "" {
			return strings.TrimSpace(detail)
		}
	}
	return abbreviateBody(raw)
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("auth_token") {
		query.Set("auth_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
