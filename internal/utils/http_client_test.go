package utils

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

func TestNewHTTPClient_BaseURLAndHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	require.NotNil(t, got)
	assert.Equal(t, "/api/version", got.URL.Path)
	assert.Equal(t, UserAgent, got.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).R().Get("/slow")

	require.Error(t, err)
}

func TestNewHTTPClient_NoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, 0).R().Post("/link")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, 1, calls)
}

func TestNewHTTPClient_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient("http://127.0.0.1:1", 0).R().SetContext(ctx).Get("/")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient("http://a.example", 0)
	b := NewHTTPClient("http://b.example", 0)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a.example", a.BaseURL)
}
