package setup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/setup/status" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckerNeedsSetup(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{name: "needs setup", body: `{"data":{"needs_setup":true}}`, expected: true},
		{name: "set up", body: `{"data":{"needs_setup":false}}`, expected: false},
		{name: "missing data", body: `{}`, expected: false},
		{name: "missing field", body: `{"data":{}}`, expected: false},
		{name: "null data", body: `{"data":null}`, expected: false},
		{name: "null field", body: `{"data":{"needs_setup":null}}`, expected: false},
		{name: "data is not an object", body: `{"data":"yes"}`, expected: false},
		{name: "top level array", body: `[1,2]`, expected: false},
		{name: "number one", body: `{"data":{"needs_setup":1}}`, expected: true},
		{name: "number zero", body: `{"data":{"needs_setup":0}}`, expected: false},
		{name: "non-empty string", body: `{"data":{"needs_setup":"false"}}`, expected: true},
		{name: "empty string", body: `{"data":{"needs_setup":""}}`, expected: false},
		{name: "object", body: `{"data":{"needs_setup":{}}}`, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStatusServer(t, http.StatusOK, tt.body)

			got, err := NewChecker(srv.URL + "/api/").NeedsSetup(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheckerErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := newStatusServer(t, http.StatusInternalServerError, `{"title":"boom"}`)

		_, err := NewChecker(srv.URL + "/api").NeedsSetup(context.Background())
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "boom")
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := newStatusServer(t, http.StatusOK, `{"data":`)

		_, err := NewChecker(srv.URL + "/api").NeedsSetup(context.Background())
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := newStatusServer(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		_, err := NewChecker(url+"/api", WithTimeout(time.Second)).NeedsSetup(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := newStatusServer(t, http.StatusOK, `{"data":{"needs_setup":true}}`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewChecker(srv.URL + "/api").NeedsSetup(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestCheckerUsesCustomClient(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK, `{"data":{"needs_setup":true}}`)

	called := false
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		return http.DefaultTransport.RoundTrip(r)
	})}

	got, err := NewChecker(srv.URL+"/api", WithHTTPClient(client)).NeedsSetup(context.Background())
	require.NoError(t, err)
	assert.True(t, got)
	assert.True(t, called)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestCheckerUsesProvidedClient(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK, `{"data":{"needs_setup":1}}`)

	got, err := NewChecker(srv.URL+"/api", WithHTTPClient(srv.Client())).NeedsSetup(context.Background())
	require.NoError(t, err)
	assert.True(t, got)
}

type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return http.DefaultTransport.RoundTrip(req)
}

func TestCheckerTimeoutKeepsProvidedClient(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK, `{"data":{"needs_setup":true}}`)
	transport := &countingTransport{}
	client := &http.Client{Transport: transport}

	checker := NewChecker(srv.URL+"/api", WithHTTPClient(client), WithTimeout(time.Second))
	got, err := checker.NeedsSetup(context.Background())
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, time.Duration(0), client.Timeout)
}
