// Package setup reports whether the console still needs its first-run configuration.
//
// Checker is the client half: it asks a console API whether setup is required.
// Service is the server half behind that endpoint.
package setup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusPath is the endpoint path relative to the API base URL.
const StatusPath = "/setup/status"

// StatusError is returned when the status endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("setup status endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// Checker queries a console API for its setup status.
type Checker struct {
	baseURL string
	client  *http.Client
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) CheckerOption {
	return func(c *Checker) {
		c.client = client
	}
}

// WithTimeout sets the request timeout. A client given through WithHTTPClient
// is copied, not modified.
func WithTimeout(timeout time.Duration) CheckerOption {
	return func(c *Checker) {
		client := *c.client
		client.Timeout = timeout
		c.client = &client
	}
}

// NewChecker creates a checker for the API rooted at baseURL, e.g. "http://host:8080/api".
func NewChecker(baseURL string, opts ...CheckerOption) *Checker {
	c := &Checker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NeedsSetup performs one GET against the status endpoint and reports data.needs_setup.
// A missing data object or field reads as false. Transport failures, non-2xx
// responses and malformed JSON are returned as errors.
func (c *Checker) NeedsSetup(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+StatusPath, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create setup status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("setup status request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("failed to decode setup status response: %w", err)
	}

	return needsSetupFrom(payload), nil
}

// needsSetupFrom extracts data.needs_setup from a decoded JSON document.
func needsSetupFrom(payload any) bool {
	body, ok := payload.(map[string]any)
	if !ok {
		return false
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		return false
	}
	return truthy(data["needs_setup"])
}

// truthy applies JavaScript truthiness to a decoded JSON value, so a server that
// sends 1 or "yes" is read the same way the browser console reads it.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
