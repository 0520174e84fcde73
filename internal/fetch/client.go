// Package fetch downloads bookmark exports from caller-supplied URLs so the
// analyze endpoint can ingest by reference as well as by upload.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client retrieves remote export files over HTTP.
type Client struct {
	apiKey     string
	maxBytes   int64
	httpClient *http.Client
}

// NewClient builds a fetch client. apiKey, when non-empty, is sent as a
// bearer token; maxBytes bounds how much of the remote body is read.
func NewClient(apiKey string, maxBytes int64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:   apiKey,
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Export is a downloaded bookmark export: the raw bytes plus the filename
// inferred from the URL path, which drives format detection.
type Export struct {
	Filename string
	Data     []byte
}

// Get downloads an export. The URL must be http or https.
func (c *Client) Get(ctx context.Context, rawURL string) (*Export, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch export: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetch export %s: status %d: %s", rawURL, resp.StatusCode, string(respBody))
	}

	limit := c.maxBytes
	if limit <= 0 {
		limit = 52428800
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read export body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("export exceeds max size (%d bytes)", limit)
	}

	filename := path.Base(u.Path)
	if filename == "" || filename == "." || filename == "/" {
		filename = "bookmarks.html"
	}
	return &Export{Filename: filename, Data: data}, nil
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
