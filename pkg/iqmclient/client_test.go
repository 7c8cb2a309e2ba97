package iqmclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	t.Run("sets authentication and protocol headers", func(t *testing.T) {
		var captured http.Header
		var capturedBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Clone()
			capturedBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient("secret-token", nil)
		res, err := client.SendRequest(context.Background(), http.MethodPost, server.URL, []byte(`{"shots":10}`))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "Bearer secret-token", captured.Get("Authorization"))
		assert.Equal(t, "application/json", captured.Get("Content-Type"))
		assert.Equal(t, userAgent, captured.Get("User-Agent"))
		assert.Equal(t, []byte(`{"shots":10}`), capturedBody)
	})

	t.Run("empty token sends no authorization header", func(t *testing.T) {
		var captured http.Header
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Clone()
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient("", server.Client())
		res, err := client.SendRequest(context.Background(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Empty(t, captured.Get("Authorization"))
	})

	t.Run("invalid url", func(t *testing.T) {
		client := NewClient("token", nil)
		_, err := client.SendRequest(context.Background(), http.MethodGet, "://not-a-url", nil)
		assert.Error(t, err)
	})
}
