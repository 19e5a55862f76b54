package scrape

import (
	"context"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/phone-discovery/internal/model"
	"github.com/sells-group/phone-discovery/internal/phone"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0"
	maxBodyBytes     = 2 * 1024 * 1024
)

// invisibleSelector matches elements whose content is never rendered as text.
const invisibleSelector = "script, style, noscript, template"

// Option configures a LocalCrawler.
type Option func(*LocalCrawler)

// WithTimeout sets the per-request timeout. A client passed to
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(l *LocalCrawler) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(l *LocalCrawler) {
		if ua != "" {
			l.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *LocalCrawler) {
		if hc != nil {
			l.client = hc
		}
	}
}

// LocalCrawler fetches HTML via net/http in a single attempt and extracts the
// visible text.
type LocalCrawler struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewLocalCrawler creates a LocalCrawler with sensible defaults.
func NewLocalCrawler(opts ...Option) *LocalCrawler {
	l := &LocalCrawler{
		client: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.timeout > 0 && l.timeout != l.client.Timeout {
		hc := *l.client
		hc.Timeout = l.timeout
		l.client = &hc
	}
	return l
}

// Crawl fetches targetURL and returns the distinct phone numbers in its
// visible text, in order of appearance. Failures yield nil.
func (l *LocalCrawler) Crawl(ctx context.Context, targetURL string) []string {
	page, err := l.Fetch(ctx, targetURL)
	if err != nil {
		zap.L().Debug("scrape: page fetch failed, treating as no content",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil
	}

	phones := phone.Extract(page.Text)
	zap.L().Debug("scrape: page fetched",
		zap.String("url", page.URL),
		zap.Int("status", page.StatusCode),
		zap.String("title", page.Title),
		zap.Int("phones", len(phones)),
	)
	return phones
}

// Fetch downloads targetURL and returns its title and visible text. The
// response status is recorded but not rejected: error pages are scanned too.
func (l *LocalCrawler) Fetch(ctx context.Context, targetURL string) (*model.CrawledPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: create request")
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := decodeBody(resp.Header.Get("Content-Type"), io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: parse html")
	}

	return &model.CrawledPage{
		URL:        targetURL,
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		Text:       visibleText(doc),
		StatusCode: resp.StatusCode,
	}, nil
}

// decodeBody converts the body to UTF-8 using the charset in contentType.
// Unknown or missing charsets leave the body as is.
func decodeBody(contentType string, body io.Reader) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	charset := params["charset"]
	if charset == "" {
		return body, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		zap.L().Debug("scrape: unsupported charset, reading as utf-8", zap.String("charset", charset))
		return body, nil
	}
	return enc.NewDecoder().Reader(body), nil
}

// visibleText returns the document's rendered text with text nodes joined
// by single spaces.
func visibleText(doc *goquery.Document) string {
	doc.Find(invisibleSelector).Remove()

	var parts []string
	doc.Find("html").Contents().Each(func(_ int, s *goquery.Selection) {
		collectText(s, &parts)
	})
	return strings.Join(parts, " ")
}

func collectText(s *goquery.Selection, parts *[]string) {
	if goquery.NodeName(s) == "#text" {
		if t := strings.TrimSpace(s.Text()); t != "" {
			*parts = append(*parts, strings.Join(strings.Fields(t), " "))
		}
		return
	}
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		collectText(c, parts)
	})
}
