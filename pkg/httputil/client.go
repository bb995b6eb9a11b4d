// Package httputil provides shared HTTP plumbing for API clients.
//
// It wraps net/http with the pieces every client in this codebase needs:
// a timeout-bounded client, default headers, JSON decoding, status-code
// mapping to sentinel errors, and streaming binary downloads to disk.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const requestTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when the remote resource doesn't exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrTransport is returned for HTTP failures (connection errors and
	// non-success status codes other than 404).
	ErrTransport = errors.New("transport error")
)

// Client provides shared HTTP functionality for API clients.
// Default headers are applied to every request made through it.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		headers: headers,
	}
}

// GetJSON performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Do(ctx, url, nil)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// Download performs an HTTP GET with additional headers and streams the
// response body to a file at dest. The file is created with mode 0644 and
// truncated if it already exists. On any error the partial file is removed.
func (c *Client) Download(ctx context.Context, url string, headers map[string]string, dest string) error {
	body, err := c.Do(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}

// Do performs an HTTP GET and returns the response body for a 2xx response.
// Request-specific headers override client defaults for the same key.
// The caller must close the returned body.
func (c *Client) Do(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		// Include a snippet of the body; GitHub error payloads are short.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, snippet)
	}
}
