package client

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

func TestFetchBytes(t *testing.T) {
	ctx := context.Background()

	t.Run("successful fetch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		c := New(5*time.Second, WithHTTPClient(srv.Client()))
		body, err := c.FetchBytes(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("<html></html>"), body)
	})

	t.Run("client error status", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			http.NotFound(w, r)
		}))
		defer srv.Close()

		c := New(5*time.Second, WithHTTPClient(srv.Client()))
		body, err := c.FetchBytes(ctx, srv.URL)
		require.Error(t, err)
		assert.Nil(t, body)
		assert.Contains(t, err.Error(), srv.URL)
		assert.True(t, IsNonRetryableError(err))
		assert.Equal(t, 1, calls, "リトライしないこと")
	})

	t.Run("network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		c := New(time.Second)
		_, err := c.FetchBytes(ctx, url)
		require.Error(t, err)
		assert.False(t, IsNonRetryableError(err))
	})
}

func TestIsNonRetryableError(t *testing.T) {
	assert.False(t, IsNonRetryableError(nil))
	assert.False(t, IsNonRetryableError(errors.New("plain")))
}
