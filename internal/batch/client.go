package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/phone-discovery/internal/model"
)

// DefaultTimeout bounds a single service call.
const DefaultTimeout = 25 * time.Second

// Discoverer asks the discovery service about one organization.
type Discoverer interface {
	Discover(ctx context.Context, rec Record) (*model.DiscoveryResult, error)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for service calls. Nil is
// ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-call timeout. A client passed to WithHTTPClient
// is copied, not modified.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Client calls POST /discover-phone on a running service.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// NewClient returns a Client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/discover-phone",
		http:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout > 0 && c.timeout != c.http.Timeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

type discoverPayload struct {
	Name     string  `json:"ngo_name"`
	Location string  `json:"location"`
	Email    *string `json:"email"`
}

// Discover posts rec to the service and decodes the result.
func (c *Client) Discover(ctx context.Context, rec Record) (*model.DiscoveryResult, error) {
	payload := discoverPayload{Name: rec.Name, Location: rec.District}
	if rec.Email != "" {
		email := rec.Email
		payload.Email = &email
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrap(err, "batch: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "batch: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "batch: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, eris.Errorf("batch: service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result model.DiscoveryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, eris.Wrap(err, "batch: decode response")
	}
	return &result, nil
}
