package repository

import (
	"context"

	"github.com/medassist-pro/api/internal/domain"
)

// GeocodingRepository resolves free-text place names to ranked coordinate
// candidates. An empty slice means the query matched nothing; errors are
// reserved for upstream or configuration failures.
type GeocodingRepository interface {
	Geocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, error)
}
