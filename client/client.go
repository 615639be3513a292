// Package client is the Go counterpart of the storefront's browser
// service layer.  CLI tooling and integration tests use it to talk to
// the REST API with the same failure posture the frontend has:
//
//   - Read helpers swallow transport and server failures and return empty
//     collections, so callers render "no rows" rather than crash; the
//     separately polled health probe is the only signal that the store is
//     down.
//   - Write helpers return the error; the caller decides how to surface it.
//
// Error bodies are `{"message": "..."}`; apiError carries that message
// and the status code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to one API base URL, e.g. "http://localhost:8081/api".
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger

	// demo substitutes canned CRM rows for failed lead and partner
	// reads.  Off by default; only the showcase deployment sets it.
	demo bool
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout replaces the default 10 s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the transport wholesale (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithDemoFixtures makes failed lead and partner reads fall back to the
// canned showcase rows instead of an empty slice.
func WithDemoFixtures() Option {
	return func(c *Client) { c.demo = true }
}

// New builds a Client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     zap.S(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// apiError is a non-2xx response.
type apiError struct {
	Status  int
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	ae, ok := err.(*apiError)
	return ok && ae.Status == http.StatusNotFound
}

/*──────────────────────────── transport core ───────────────────────────────*/

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		ae := &apiError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(ae); err != nil || ae.Message == "" {
			ae.Message = http.StatusText(resp.StatusCode)
		}
		return ae
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// get fetches path into out, absorbing failures: on any error out is left
// untouched and false is returned.  Mirrors the frontend's
// empty-collection fallback for reads.
func (c *Client) get(ctx context.Context, path string, out any) bool {
	if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
		c.log.Warnw("read failed, returning empty result", "path", path, "err", err)
		return false
	}
	return true
}
