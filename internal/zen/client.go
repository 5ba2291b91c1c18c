// Package zen provides functionality for retrieving and parsing the Zen
// broadband status page.
package zen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielolaszy/zenwatch/internal/config"
	"github.com/danielolaszy/zenwatch/internal/logging"
)

// userAgent is sent with every request. The status site serves an error
// page to clients without a browser user agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:60.0) Gecko/20100101 Firefox/60.0"

// requestTimeout bounds the single page fetch.
const requestTimeout = 30 * time.Second

// Client fetches pages from the Zen status site.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the status site described by the
// configuration.
func NewClient(cfg config.ZenConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// FetchOutagesPage retrieves the raw HTML of the outages page for the given
// phone-number prefix. Non-2xx responses are errors.
func (c *Client) FetchOutagesPage(ctx context.Context, prefix string) ([]byte, error) {
	pageURL := fmt.Sprintf("%s/outages.aspx?number=%s", c.baseURL, url.QueryEscape(prefix))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	logging.Debug("fetching status page", "url", pageURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status page returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status page body: %w", err)
	}

	logging.Debug("fetched status page", "bytes", len(body))

	return body, nil
}
