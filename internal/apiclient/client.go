package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"guarashopp-storefront/internal/logger"
)

const maxBodyBytes = 4 << 20

// TokenSource returns the bearer token to attach, or "" for anonymous calls.
type TokenSource func() string

// Client is the outbound adapter to the GuaraShopp REST API. It prefixes the
// base URL, injects the bearer token and notifies registered handlers on 401.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger

	mu             sync.RWMutex
	token          TokenSource
	onUnauthorized []func(context.Context)
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource replaces the bearer token provider.
func (c *Client) SetTokenSource(src TokenSource) {
	c.mu.Lock()
	c.token = src
	c.mu.Unlock()
}

// OnUnauthorized registers fn to run whenever any call receives a 401.
// The failing call still returns its *Error to the caller afterwards. fn gets
// the request context detached from its cancellation.
func (c *Client) OnUnauthorized(fn func(context.Context)) {
	c.mu.Lock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
	c.mu.Unlock()
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends one JSON request. out may be nil when the response body is not needed.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, req, out)
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	src := c.token
	c.mu.RUnlock()
	if src == nil {
		return ""
	}
	return src()
}

func (c *Client) notifyUnauthorized(ctx context.Context) {
	c.mu.RLock()
	handlers := make([]func(context.Context), len(c.onUnauthorized))
	copy(handlers, c.onUnauthorized)
	c.mu.RUnlock()
	for _, fn := range handlers {
		fn(ctx)
	}
}

// unwrapData strips the {"data": ...} envelope some endpoints use.
func unwrapData(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return raw
	}
	data, ok := envelope["data"]
	if !ok {
		return raw
	}
	return data
}

func decodeMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if len(body.Message) > 0 {
		var single string
		if err := json.Unmarshal(body.Message, &single); err == nil {
			return single
		}
		var many []string
		if err := json.Unmarshal(body.Message, &many); err == nil {
			return strings.Join(many, "; ")
		}
	}
	return body.Error
}
