package overpass

import (
	"context"
	"io"
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

func newTestClient(endpoint string) *client {
	return NewClient(&config.OverpassConfig{
		Endpoint:        endpoint,
		QueryTimeoutSec: 25,
		RequestTimeout:  5 * time.Second,
	}, zap.NewNop()).(*client)
}

func TestClient_SearchFacilities(t *testing.T) {
	center := domain.Coordinate{Lat: 28.6139, Lng: 77.2090}

	t.Run("decodes nodes and way centroids", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotQuery = string(body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"elements": [
					{
						"type": "node", "id": 123456,
						"lat": 28.62, "lon": 77.21,
						"tags": {"amenity": "hospital", "name": "Apollo Hospital"}
					},
					{
						"type": "way", "id": 789,
						"center": {"lat": 28.63, "lon": 77.22},
						"tags": {"amenity": "hospital", "name": "AIIMS"}
					}
				]
			}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)

		raw, err := c.SearchFacilities(context.Background(), center, 5000, "hospital")
		require.NoError(t, err)

		assert.Contains(t, gotQuery, `[out:json][timeout:25]`)
		assert.Contains(t, gotQuery, `node["amenity"="hospital"](around:5000,`)
		assert.Contains(t, gotQuery, `node["healthcare"="hospital"]`)
		assert.Contains(t, gotQuery, "out center meta;")

		require.Len(t, raw, 2)

		node := raw[0]
		assert.Equal(t, "node", node.Source)
		assert.Equal(t, "123456", node.ID)
		require.NotNil(t, node.Lat)
		assert.Equal(t, 28.62, *node.Lat)
		assert.Equal(t, "Apollo Hospital", node.Tags["name"])
		assert.Nil(t, node.Center)

		way := raw[1]
		assert.Equal(t, "way", way.Source)
		assert.Nil(t, way.Lat)
		require.NotNil(t, way.Center)
		assert.Equal(t, 28.63, way.Center.Lat)
		assert.Equal(t, 77.22, way.Center.Lng)
	})

	t.Run("empty element list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": []}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)

		raw, err := c.SearchFacilities(context.Background(), center, 5000, "hospital")
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("gateway timeout is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)

		_, err := c.SearchFacilities(context.Background(), center, 5000, "hospital")
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("unreachable endpoint is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := newTestClient(srv.URL)

		_, err := c.SearchFacilities(context.Background(), center, 5000, "hospital")
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})

	t.Run("malformed body is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>busy</html>`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)

		_, err := c.SearchFacilities(context.Background(), center, 5000, "hospital")
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
	})
}
