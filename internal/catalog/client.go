package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Fetcher retrieves a catalog from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context) (Catalog, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client downloads the catalog document over HTTP.
type Client struct {
	docURL    *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultDocument  = "animes.json"
	defaultUserAgent = "reel/0.1"
	requestTimeout   = 10 * time.Second
	maxDocumentBytes = 32 << 20
)

// NewClient builds a Client for rawURL. A URL without a .json path gets
// /animes.json appended.
func NewClient(rawURL string) (*Client, error) {
	doc, err := parseDocumentURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		docURL: doc,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// URL returns the resolved document URL.
func (c *Client) URL() string {
	if c == nil || c.docURL == nil {
		return ""
	}
	return c.docURL.String()
}

// Fetch downloads and parses the catalog document.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	if c == nil {
		return Catalog{}, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.docURL.String(), nil)
	if err != nil {
		return Catalog{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Catalog{}, fmt.Errorf("catalog %s returned status %d", c.docURL.Path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return Catalog{}, fmt.Errorf("read response: %w", err)
	}
	return Parse(data)
}

func parseDocumentURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("catalog url %q: missing host", rawURL)
	}
	if !strings.HasSuffix(strings.ToLower(u.Path), ".json") {
		u.Path = path.Join("/", u.Path, defaultDocument)
	}
	u.Fragment = ""
	return u, nil
}
