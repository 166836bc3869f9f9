package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultUserAgent identifies the scraper to the source host.
	DefaultUserAgent = "Mozilla/5.0 (compatible; FootyBets/1.0)"

	// DefaultDelay is the politeness pause applied after each request.
	DefaultDelay = 300 * time.Millisecond

	requestTimeout = 30 * time.Second
)

// PageCache is an optional cache for fetched HTML, keyed by URL. The
// cache is injected explicitly so the client stays re-entrant; a miss or
// cache failure just falls through to the network.
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url string, body string)
}

// Client fetches pages from the source host with a fixed user-agent and
// a politeness delay. There are no retries: a failed page is reported
// and skipped, never fatal to a run.
type Client struct {
	http      *http.Client
	userAgent string
	delay     time.Duration
	cache     PageCache
}

// NewClient creates a fetch client. cache may be nil.
func NewClient(userAgent string, delay time.Duration, cache PageCache) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if delay < 0 {
		delay = 0
	}
	return &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: userAgent,
		delay:     delay,
		cache:     cache,
	}
}

// Get fetches one page and returns the raw body. The politeness delay is
// applied before returning, so callers can loop over URLs without their
// own pacing. Cache hits skip both the network and the delay.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, url); ok {
			return []byte(body), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, url, string(body))
	}

	if err := c.pause(ctx); err != nil {
		return nil, err
	}

	return body, nil
}

// GetDocument fetches a page and parses it into a goquery document.
func (c *Client) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	return doc, nil
}

// pause sleeps for the politeness delay, honoring cancellation.
func (c *Client) pause(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
