package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// basePath is prefixed to every resource path.
const basePath = "/api"

// TokenSource supplies the current bearer token. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response from the backend, carrying whatever the
// backend put in its JSON error body.
type APIError struct {
	Status        int
	Message       string
	CorrelationID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsForbidden reports whether err is a backend 403.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// errorBody is the shape of the backend's error responses. Either field may
// carry the human-readable text.
type errorBody struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Client is the shared HTTP client under every resource API. It attaches
// bearer auth, maps non-2xx responses to *APIError, and fires the
// OnUnauthorized hook on 401. It never retries.
type Client struct {
	baseURL        string
	http           *http.Client
	logger         zerolog.Logger
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithOnUnauthorized registers a hook invoked once per 401 response,
// before the error is returned to the caller.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// NewClient creates the shared backend client.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger zerolog.Logger, opts ...Option) *Client {
	clientLogger := logger.With().Str("component", "api-client").Logger()

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  clientLogger,
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				tokens: tokens,
				next:   http.DefaultTransport,
				logger: clientLogger,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AbsoluteURL turns a server-relative file path (as returned by the upload
// endpoint) into a full URL.
func (c *Client) AbsoluteURL(serverPath string) string {
	if serverPath == "" {
		return ""
	}
	if strings.HasPrefix(serverPath, "http://") || strings.HasPrefix(serverPath, "https://") {
		return serverPath
	}
	return c.baseURL + "/" + strings.TrimLeft(serverPath, "/")
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// delete issues a DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do builds, sends, and decodes one request. out may be nil for responses
// whose body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp, method, path)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw sends an already-built request (multipart upload) through the same
// error mapping as do.
func (c *Client) doRaw(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp, req.Method, req.URL.Path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// responseError maps a non-2xx response to an error. 401 discards the
// session via the hook; everything else becomes an *APIError with the
// backend's own message when one was sent.
func (c *Client) responseError(resp *http.Response, method, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body errorBody
	_ = json.Unmarshal(raw, &body)
	message := body.Error
	if message == "" {
		message = body.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	c.logger.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("message", message).
		Msg("backend request rejected")

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, model.ErrSessionExpired)
	}

	return &APIError{
		Status:        resp.StatusCode,
		Message:       message,
		CorrelationID: body.CorrelationID,
	}
}
