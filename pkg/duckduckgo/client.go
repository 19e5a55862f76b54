// Package duckduckgo provides a client for the DuckDuckGo HTML search page.
package duckduckgo

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the no-JavaScript DuckDuckGo results page.
const DefaultBaseURL = "https://html.duckduckgo.com/html/"

// resultSelector matches the title anchor of each organic result.
const resultSelector = ".result__a"

// maxBodyBytes caps how much of a results page is read.
const maxBodyBytes = 2 * 1024 * 1024

// Client defines the DuckDuckGo search operations.
type Client interface {
	// Search submits query and returns the organic results in page order.
	Search(ctx context.Context, query string) ([]Result, error)
}

// Result is a single organic search result.
type Result struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Option configures the DuckDuckGo client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each search.
func WithUserAgent(ua string) Option {
	return func(c *httpClient) {
		c.userAgent = ua
	}
}

// WithTimeout sets the request timeout. A client passed to WithHTTPClient
// is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.timeout = d
	}
}

// WithRateLimit caps searches at limit per second with the given burst,
// shared by all callers of the client. A non-positive limit disables it.
func WithRateLimit(limit float64, burst int) Option {
	return func(c *httpClient) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a new DuckDuckGo HTML search client. Each search is a
// single attempt; there are no retries.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:   DefaultBaseURL,
		userAgent: "Mozilla/5.0",
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.timeout != c.http.Timeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

func (c *httpClient) Search(ctx context.Context, query string) ([]Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "duckduckgo: rate limit wait")
		}
	}

	reqURL := c.baseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("duckduckgo: unexpected status %d", resp.StatusCode)
	}

	return parseResults(io.LimitReader(resp.Body, maxBodyBytes))
}

// parseResults extracts result anchors from a results page.
func parseResults(r io.Reader) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: parse html")
	}

	var results []Result
	doc.Find(resultSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		results = append(results, Result{
			Title: strings.TrimSpace(s.Text()),
			URL:   unwrapRedirect(href),
		})
	})
	return results, nil
}

// unwrapRedirect turns a DuckDuckGo click-tracking link
// (//duckduckgo.com/l/?uddg=<target>) into its target URL. Other links are
// returned unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasSuffix(u.Host, "duckduckgo.com") || !strings.HasPrefix(u.Path, "/l/") {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
