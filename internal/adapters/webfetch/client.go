// Package webfetch provides a minimal HTTP page fetcher for the content extractor
package webfetch

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "harmwatch/internal/platform/errors"
	"harmwatch/internal/platform/logger"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultUA       = "harmwatch-extractor"
	defaultMaxBytes = 2 << 20 // pages larger than this are cut off, not rejected
)

// Options configures the Client
type Options struct {
	UserAgent string
	Timeout   time.Duration

	// MaxBodyBytes bounds how much of a response body is read
	MaxBodyBytes int64
}

// Client issues single-attempt GET requests. No retries: a failed fetch is
// reported to the caller and the interaction simply does not proceed
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBytes
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("webfetch"),
	}
}

// Get fetches url and returns the response body on HTTP 200
// every failure maps to a single unavailable error; callers do not branch on cause
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Unavailablef("failed to fetch content from the url")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("url", url).Msg("fetch failed")
		return nil, perr.Unavailablef("failed to fetch content from the url")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("non-200 response")
		return nil, perr.Unavailablef("failed to fetch content from the url")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes))
	if err != nil {
		return nil, perr.Unavailablef("failed to fetch content from the url")
	}

	c.log.Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched page")
	return body, nil
}
