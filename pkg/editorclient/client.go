package editorclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scenectl/scenectl/pkg/logging"
)

const (
	// DefaultBaseURL is where the editor's control API listens by default.
	DefaultBaseURL = "http://localhost:7777"

	// DefaultTimeout bounds a single request/response exchange.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-request identifier for editor-side logs.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to one editor control endpoint.
// The base URL is fixed at construction; a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    *time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout. Zero disables it.
// Combined with WithHTTPClient it applies to a copy of that client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is used
// as given unless WithTimeout is also set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the control API at baseURL (e.g. "http://localhost:7777").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		timeout := DefaultTimeout
		if c.timeout != nil {
			timeout = *c.timeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	case c.timeout != nil:
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the endpoint the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send issues one request and returns the decoded response body.
//
// The payload is encoded as the JSON body only for non-GET requests. The HTTP
// status code is ignored; the editor reports outcome through the success
// field. Any transport fault, including an undecodable body, is returned as
// a failure Response rather than an error.
func (c *Client) Send(ctx context.Context, method, path string, payload Payload) Response {
	resp, err := c.do(ctx, method, path, payload)
	if err != nil {
		c.logger.Debug("editor request failed", "method", method, "path", path, "error", err)
		return failure(fmt.Sprintf("Cannot connect to %s: %v", c.baseURL, err))
	}
	c.logger.Debug("editor request", "method", method, "path", path, "success", resp.Success())
	return resp
}

func (c *Client) do(ctx context.Context, method, path string, payload Payload) (Response, error) {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	if payload != nil && method != http.MethodGet {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	var result Response
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response body: %w", err)
	}
	if result == nil {
		return nil, errors.New("invalid response body: not a JSON object")
	}
	return result, nil
}
