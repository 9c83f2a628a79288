package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher loads the directory records. *Client implements it; tests and the
// loader depend on the interface.
type Fetcher interface {
	FetchPeople(ctx context.Context) ([]Person, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the remote record source over HTTP.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultURL is the record source used when none is configured.
	DefaultURL       = "https://jsonplaceholder.typicode.com/users"
	defaultUserAgent = "roster/0.1"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero leaves requests unbounded; only the
// caller's context can end them.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the given source URL.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	endpoint, err := parseSourceURL(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the resolved source endpoint.
func (c *Client) URL() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchPeople retrieves the full record list in source order.
func (c *Client) FetchPeople(ctx context.Context) ([]Person, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Person
	if err := c.get(ctx, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *Client) CloseIdleConnections() {
	if c != nil && c.http != nil {
		c.http.CloseIdleConnections()
	}
}

func (c *Client) get(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("source %s returned status %d", c.endpoint.Redacted(), resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseSourceURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse source url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("source url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("source url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
