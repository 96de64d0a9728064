package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrConnection marks requests that never produced a response.
var ErrConnection = errors.New("connection error")

type connectionError struct {
	err error
}

func (e *connectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.err)
}

func (e *connectionError) Unwrap() []error {
	return []error{ErrConnection, e.err}
}

// Client talks to the backend rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTokenSource sets the function consulted for the bearer token on every
// request. An empty token sends no Authorization header.
func WithTokenSource(fn func() string) Option {
	return func(cl *Client) {
		cl.token = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.log = l
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		token:      func() string { return "" },
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends a request to endpoint. body, when non-nil, is JSON encoded.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("api_request_failed", "request_id", requestID, "method", method, "endpoint", endpoint, "error", err)
		return nil, &connectionError{err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &connectionError{err: fmt.Errorf("reading response body: %w", err)}
	}

	c.log.Debug("api_request", "request_id", requestID, "method", method, "endpoint", endpoint, "status", resp.StatusCode)
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, body)
}
