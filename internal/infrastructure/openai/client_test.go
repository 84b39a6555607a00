package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/pkg/errors"
)

func newTestClient(baseURL, apiKey string) *client {
	return NewClient(&config.OpenAIConfig{
		BaseURL:        baseURL,
		APIKey:         apiKey,
		Model:          "gpt-3.5-turbo",
		MaxTokens:      500,
		Temperature:    0.7,
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop()).(*client)
}

func TestClient_Complete(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: "system", Content: "You are a helpful assistant."},
		{Role: "user", Content: "I have a headache."},
	}

	t.Run("returns first choice with usage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req completionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-3.5-turbo", req.Model)
			assert.Equal(t, 500, req.MaxTokens)
			assert.Len(t, req.Messages, 2)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"choices": [{"message": {"content": "Try resting and staying hydrated."}}],
				"usage": {"prompt_tokens": 25, "completion_tokens": 8, "total_tokens": 33}
			}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		completion, err := c.Complete(context.Background(), messages)
		require.NoError(t, err)

		assert.Equal(t, "Try resting and staying hydrated.", completion.Content)
		require.NotNil(t, completion.Usage)
		assert.Equal(t, 33, completion.Usage.TotalTokens)
	})

	t.Run("empty choices is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		_, err := c.Complete(context.Background(), messages)
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("rate limit is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		_, err := c.Complete(context.Background(), messages)
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("missing API key is a configuration error", func(t *testing.T) {
		c := newTestClient("http://localhost:0", "")

		_, err := c.Complete(context.Background(), messages)
		assert.ErrorIs(t, err, errors.ErrMissingConfig)
	})
}
