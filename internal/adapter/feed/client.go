package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/capwatch/alertmap/internal/config"
)

// acceptTypes is the content negotiation header for the NWS API; it serves
// the Atom rendition only when asked for it.
const acceptTypes = "application/atom+xml,application/xml,text/xml"

// Client fetches the raw active-alerts Atom feed over HTTP.
type Client struct {
	feedURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a feed client with the configured URL, user agent, and
// request timeout.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		feedURL:   cfg.FeedURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// Fetch performs one GET against the feed URL and returns the raw body.
// Any network failure, timeout, or non-2xx status is an error; the caller
// treats it as fatal for the run.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptTypes)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed request: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	c.logger.Debug("feed fetched", "url", c.feedURL, "bytes", len(data))
	return data, nil
}
