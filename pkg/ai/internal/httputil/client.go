// ABOUTME: Shared HTTP client for streaming provider calls
// ABOUTME: Retries 429/5xx with exponential backoff; proxy from environment

package httputil

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/overhearhq/overhear/pkg/ai/internal/sse"
)

const (
	maxAttempts   = 3
	baseBackoff   = 500 * time.Millisecond
	maxBackoff    = 10 * time.Second
	clientTimeout = 5 * time.Minute
)

// Client wraps http.Client with default headers and retry on transient
// status codes. One Client serves one provider endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// NewClient creates a client for the given base URL. The headers are set on
// every request.
func NewClient(baseURL string, headers map[string]string) *Client {
	if headers == nil {
		headers = make(map[string]string)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: clientTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		baseURL: baseURL,
		headers: headers,
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post sends a POST with retry on 429 and 5xx. The body must be seekable so
// it can be rewound between attempts.
func (c *Client) Post(ctx context.Context, path string, body io.ReadSeeker) (*http.Response, error) {
	var resp *http.Response
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if _, err := body.Seek(0, io.SeekStart); err != nil {
				return nil, fmt.Errorf("rewinding request body: %w", err)
			}
			if err := sleepCtx(ctx, backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
		if err != nil {
			return nil, fmt.Errorf("creating request for %s: %w", path, err)
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		if !retryable(resp.StatusCode) || attempt == maxAttempts-1 {
			return resp, nil
		}
		resp.Body.Close()
	}
	return resp, nil
}

// StreamSSE sends a POST and returns an SSE reader over the response body.
// The caller owns resp.Body and must close it, including when abandoning
// the stream early.
func (c *Client) StreamSSE(ctx context.Context, path string, body io.ReadSeeker) (*sse.Reader, *http.Response, error) {
	resp, err := c.Post(ctx, path, body)
	if err != nil {
		return nil, nil, err
	}
	return sse.NewReader(resp.Body), resp, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func backoff(attempt int) time.Duration {
	d := baseBackoff << attempt
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
