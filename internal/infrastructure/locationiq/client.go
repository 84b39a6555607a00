package locationiq

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
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	countryCodes string
	limit        int
	logger       *zap.Logger
}

// NewClient creates a LocationIQ forward-geocoding client.
func NewClient(cfg *config.LocationIQConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		countryCodes: cfg.CountryCodes,
		limit:        cfg.Limit,
		logger:       logger,
	}
}

// searchResult mirrors the LocationIQ search response; coordinates arrive
// as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text place name to ranked candidates restricted
// to the configured country codes. A query that matches nothing yields an
// empty slice, not an error.
func (c *client) Geocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("locationiq API key is not set: %w", errors.ErrMissingConfig)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("countrycodes", c.countryCodes)
	params.Set("addressdetails", "1")

	reqURL := fmt.Sprintf("%s/v1/search.php?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("LocationIQ request failed", zap.Error(err))
		return nil, fmt.Errorf("locationiq request failed: %v: %w", err, errors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	// LocationIQ answers 404 "Unable to geocode" for no-match queries.
	if resp.StatusCode == http.StatusNotFound {
		return []domain.GeocodeCandidate{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("LocationIQ API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("locationiq API error: status %d: %w", resp.StatusCode, errors.ErrUpstreamUnavailable)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode LocationIQ response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode locationiq response: %v: %w", err, errors.ErrUpstreamUnavailable)
	}

	candidates := make([]domain.GeocodeCandidate, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			c.logger.Warn("Skipping geocode result with unparsable coordinates",
				zap.String("lat", r.Lat), zap.String("lon", r.Lon))
			continue
		}
		candidates = append(candidates, domain.GeocodeCandidate{
			Coordinate:  domain.Coordinate{Lat: lat, Lng: lng},
			DisplayName: r.DisplayName,
		})
	}

	c.logger.Debug("LocationIQ geocode completed",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}
