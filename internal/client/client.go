package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// ErrSessionExpired is returned when the API rejects the session cookie.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response whose envelope could be decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// envelope is the response wrapper used by every API endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin SDK over the storefront REST API. Authentication rides
// on the session cookie held in the client's jar, so every call after
// Login is automatically authenticated.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        *cookiejar.Jar

	// onUnauthorized fires once per rejected request, before the call
	// returns ErrSessionExpired. Login requests never trigger it.
	onUnauthorized func()
}

// New creates a Client against the given base URL, e.g.
// "http://localhost:8080/api".
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: base,
		jar:     jar,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// OnUnauthorized registers a callback invoked whenever a request other
// than login comes back 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Cookies returns the session cookies currently held for the API host.
func (c *Client) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

// SetCookies restores previously saved session cookies.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.jar.SetCookies(c.baseURL, cookies)
}

// do performs one API request. body is JSON-encoded when non-nil; the
// envelope's data is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && path != "/auth/login" {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response from %s (status %d): %w", path, resp.StatusCode, err)
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data from %s: %w", path, err)
		}
	}
	return nil
}
