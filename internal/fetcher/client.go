package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	metadataPath = "/metadata/stationmetadata.xml"
	realtimePath = "/data/realtime2"
)

var (
	// ErrNotFound indicates the station has no realtime feed (HTTP 404).
	ErrNotFound = errors.New("data unavailable (404)")
	// ErrEmptyFeed indicates the feed was retrieved but contained no text.
	ErrEmptyFeed = errors.New("empty data")
)

// Options parameterise the NDBC HTTP client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client fetches metadata and realtime feeds from the NDBC web endpoints.
type Client struct {
	opts    Options
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewClient constructs an NDBC client.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://www.ndbc.noaa.gov"
	}

	return &Client{
		opts:    opts,
		logger:  logger.With().Str("component", "ndbc_client").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// FetchMetadata downloads the station metadata XML document.
func (c *Client) FetchMetadata(ctx context.Context) ([]byte, error) {
	url := c.baseURL + metadataPath
	c.logger.Info().Str("url", url).Msg("downloading station metadata")

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// FetchFeed downloads one station's realtime standard met feed as text.
// A 404 response maps to ErrNotFound and an all-whitespace body to
// ErrEmptyFeed so the caller can report per-station reasons.
func (c *Client) FetchFeed(ctx context.Context, station string) (string, error) {
	url := fmt.Sprintf("%s%s/%s.txt", c.baseURL, realtimePath, station)
	c.logger.Info().Str("station", station).Str("url", url).Msg("downloading realtime data")

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyFeed
	}
	return text, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if ua := strings.TrimSpace(c.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", "ndbc-data/1.0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ndbc responded %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

var (
	_ MetadataFetcher = (*Client)(nil)
	_ FeedFetcher     = (*Client)(nil)
)
