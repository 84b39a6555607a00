package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient      *http.Client
	endpoint        string
	queryTimeoutSec int
	logger          *zap.Logger
}

// NewClient creates an Overpass API facility-search client.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.FacilitySearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint:        cfg.Endpoint,
		queryTimeoutSec: cfg.QueryTimeoutSec,
		logger:          logger,
	}
}

// element is one entry of an Overpass JSON response. Ways and relations
// queried with "out center" carry a centroid instead of lat/lon.
type element struct {
	Type   string   `json:"type"`
	ID     int64    `json:"id"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type response struct {
	Elements []element `json:"elements"`
}

// SearchFacilities runs an around-query for the category within
// radiusMeters of center and returns the raw elements. One attempt, no
// retries; timeouts and non-2xx responses surface as UpstreamUnavailable.
func (c *client) SearchFacilities(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters int,
	category string,
) ([]domain.RawFacility, error) {
	query := c.buildQuery(center, radiusMeters, category)

	c.logger.Debug("Calling Overpass API",
		zap.Float64("lat", center.Lat),
		zap.Float64("lng", center.Lng),
		zap.Int("radius_m", radiusMeters),
		zap.String("category", category))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Overpass request failed", zap.Error(err))
		return nil, fmt.Errorf("overpass request failed: %v: %w", err, errors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d: %w", resp.StatusCode, errors.ErrUpstreamUnavailable)
	}

	var overpassResp response
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode Overpass response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode overpass response: %v: %w", err, errors.ErrUpstreamUnavailable)
	}

	raw := make([]domain.RawFacility, 0, len(overpassResp.Elements))
	for _, el := range overpassResp.Elements {
		rf := domain.RawFacility{
			Source: el.Type,
			ID:     strconv.FormatInt(el.ID, 10),
			Lat:    el.Lat,
			Lng:    el.Lon,
			Tags:   el.Tags,
		}
		if el.Center != nil {
			rf.Center = &domain.Coordinate{Lat: el.Center.Lat, Lng: el.Center.Lon}
		}
		raw = append(raw, rf)
	}

	c.logger.Debug("Overpass search completed", zap.Int("elements", len(raw)))

	return raw, nil
}

// buildQuery assembles the Overpass QL around-query. Hospitals are tagged
// with amenity on nodes/ways/relations and sometimes only with healthcare.
func (c *client) buildQuery(center domain.Coordinate, radiusMeters int, category string) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, center.Lat, center.Lng)

	return fmt.Sprintf(`[out:json][timeout:%d];
(
  node["amenity"=%q]%s;
  way["amenity"=%q]%s;
  relation["amenity"=%q]%s;
  node["healthcare"=%q]%s;
  way["healthcare"=%q]%s;
);
out center meta;`,
		c.queryTimeoutSec,
		category, around,
		category, around,
		category, around,
		category, around,
		category, around,
	)
}
