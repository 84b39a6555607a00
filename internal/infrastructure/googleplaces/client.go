package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a Google Places facility-search client. It implements
// the same contract as the Overpass client so the two can be swapped by
// configuration.
func NewClient(cfg *config.GooglePlacesConfig, logger *zap.Logger) repository.FacilitySearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type nearbyResult struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type nearbyResponse struct {
	Status  string         `json:"status"`
	Results []nearbyResult `json:"results"`
}

// SearchFacilities runs a Places nearby search and adapts the results to
// the raw facility schema shared with the Overpass strategy.
func (c *client) SearchFacilities(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters int,
	category string,
) ([]domain.RawFacility, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("google places API key is not set: %w", errors.ErrMissingConfig)
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", category)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/nearbysearch/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Google Places request failed", zap.Error(err))
		return nil, fmt.Errorf("google places request failed: %v: %w", err, errors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("google places API error: status %d: %w", resp.StatusCode, errors.ErrUpstreamUnavailable)
	}

	var placesResp nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&placesResp); err != nil {
		c.logger.Error("Failed to decode Google Places response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode google places response: %v: %w", err, errors.ErrUpstreamUnavailable)
	}

	if placesResp.Status != "OK" && placesResp.Status != "ZERO_RESULTS" {
		c.logger.Error("Google Places API returned non-OK status",
			zap.String("status", placesResp.Status))
		return nil, fmt.Errorf("google places API status %s: %w", placesResp.Status, errors.ErrUpstreamUnavailable)
	}

	raw := make([]domain.RawFacility, 0, len(placesResp.Results))
	for _, r := range placesResp.Results {
		lat := r.Geometry.Location.Lat
		lng := r.Geometry.Location.Lng
		tags := map[string]string{"amenity": category}
		if r.Name != "" {
			tags["name"] = r.Name
		}
		if r.Vicinity != "" {
			tags["address"] = r.Vicinity
		}
		raw = append(raw, domain.RawFacility{
			Source: "google",
			ID:     r.PlaceID,
			Lat:    &lat,
			Lng:    &lng,
			Tags:   tags,
		})
	}

	c.logger.Debug("Google Places search completed", zap.Int("results", len(raw)))

	return raw, nil
}
