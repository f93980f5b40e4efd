package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"storefront/internal/config"
	"storefront/internal/metrics"
)

// Client is the single shared pipeline for backend calls. The outbound
// stage attaches the held bearer token, the inbound stage enforces the
// expiry policy; page code only ever calls the typed methods.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	mu    sync.RWMutex
	token string
	creds CredentialWiper
	nav   Navigator
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		logger:  logger,
	}

	c.http = &http.Client{
		Timeout: cfg.Backend.Timeout,
		Transport: &bearerTransport{
			source: c,
			next: &expiryTransport{
				policy: ExpiryAction,
				client: c,
				next:   http.DefaultTransport,
			},
		},
	}

	return c
}

// OnAuthFailure registers the forced-logout hooks. Called once at
// startup, by the session store only.
func (c *Client) OnAuthFailure(creds CredentialWiper, nav Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
	c.nav = nav
}

func (c *Client) authFailureHooks() (CredentialWiper, Navigator) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds, c.nav
}

// SetToken configures the outbound stage to attach the given bearer
// token. Only the session store writes it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one backend call. endpoint is the templated path used for
// metric labels; path is the concrete request path.
func (c *Client) do(ctx context.Context, method, endpoint, path string, headers map[string]string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, endpoint, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(method, endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, endpoint, ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.readError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

// readError pulls the backend's {message} body, if any, into an APIError.
func (c *Client) readError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
	}

	return apiErr
}
