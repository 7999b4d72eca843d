// Package client is the single point of contact with the LOCA backend.
// It builds and issues every HTTP request the app needs, enforces the
// per-call timeout, and normalizes failures into the taxonomy in errors.go.
//
// The client holds no mutable request state: each call owns its request,
// nothing is retried, cached, or queued. Callers cancel through the
// context they pass in.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTimeout       = 10 * time.Second
	DefaultHealthTimeout = 5 * time.Second

	// DefaultPageSize is applied when a listing call leaves Limit unset.
	DefaultPageSize = 20
)

// Config is resolved once at startup and injected; the client never reads
// process-wide state, so tests and tools can run several clients at once.
type Config struct {
	BaseURL       string
	Timeout       time.Duration // zero means DefaultTimeout
	HealthTimeout time.Duration // zero means DefaultHealthTimeout
}

type Client struct {
	httpClient    *http.Client
	baseURL       string
	timeout       time.Duration
	healthTimeout time.Duration
}

func New(conf Config) (*Client, error) {
	base := strings.TrimSuffix(conf.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("client.New: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("client.New: invalid base URL -> %w", err)
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	healthTimeout := conf.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = DefaultHealthTimeout
	}

	return &Client{
		httpClient:    &http.Client{},
		baseURL:       base,
		timeout:       timeout,
		healthTimeout: healthTimeout,
	}, nil
}

// BaseURL returns the address every request is issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON issues one request with the default timeout layered onto ctx and
// decodes a 2xx body into out. A nil out drains and discards the body.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	return c.doJSONTimeout(ctx, op, method, path, query, body, contentType, out, c.timeout)
}

func (c *Client) doJSONTimeout(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType string, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("%v -> build request -> %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Debug("request failed", zap.String("op", op), zap.String("url", u), zap.Error(err))
		return normalizeTransportErr(op, err)
	}
	defer resp.Body.Close()

	zap.L().Debug("request done", zap.String("op", op), zap.String("url", u), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(op, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.doJSON(ctx, op, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, query url.Values, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%v -> marshal body -> %w", op, err)
	}
	return c.doJSON(ctx, op, http.MethodPost, path, query, strings.NewReader(string(body)), "application/json", out)
}

// CheckConnection probes the health endpoint with the shorter health
// timeout. Every failure resolves to false; this is the one call that
// never surfaces an error.
func (c *Client) CheckConnection(ctx context.Context) bool {
	err := c.doJSONTimeout(ctx, "health check", http.MethodGet, "/health", nil, nil, "", nil, c.healthTimeout)
	return err == nil
}
