package locationiq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/pkg/errors"
)

func newTestClient(baseURL, apiKey string) *client {
	return NewClient(&config.LocationIQConfig{
		BaseURL:        baseURL,
		APIKey:         apiKey,
		CountryCodes:   "in",
		Limit:          5,
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop()).(*client)
}

func TestClient_Geocode(t *testing.T) {
	t.Run("parses string coordinates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/search.php", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "test-key", q.Get("key"))
			assert.Equal(t, "Delhi", q.Get("q"))
			assert.Equal(t, "json", q.Get("format"))
			assert.Equal(t, "in", q.Get("countrycodes"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"lat": "28.6139391", "lon": "77.2090212", "display_name": "New Delhi, Delhi, India"},
				{"lat": "28.7040592", "lon": "77.1024902", "display_name": "Delhi, India"}
			]`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		candidates, err := c.Geocode(context.Background(), "Delhi")
		require.NoError(t, err)

		require.Len(t, candidates, 2)
		assert.InDelta(t, 28.6139391, candidates[0].Coordinate.Lat, 1e-9)
		assert.InDelta(t, 77.2090212, candidates[0].Coordinate.Lng, 1e-9)
		assert.Equal(t, "New Delhi, Delhi, India", candidates[0].DisplayName)
	})

	t.Run("skips unparsable coordinates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"lat": "not-a-number", "lon": "77.2", "display_name": "Broken"},
				{"lat": "28.6", "lon": "77.2", "display_name": "Good"}
			]`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		candidates, err := c.Geocode(context.Background(), "Delhi")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Good", candidates[0].DisplayName)
	})

	t.Run("404 means no match, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Unable to geocode"}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		candidates, err := c.Geocode(context.Background(), "xyzzy")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("server error is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		_, err := c.Geocode(context.Background(), "Delhi")
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("malformed body is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		_, err := c.Geocode(context.Background(), "Delhi")
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("missing API key is a configuration error", func(t *testing.T) {
		c := newTestClient("http://localhost:0", "")

		_, err := c.Geocode(context.Background(), "Delhi")
		assert.ErrorIs(t, err, errors.ErrMissingConfig)
	})
}
