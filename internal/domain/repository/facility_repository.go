package repository

import (
	"context"

	"github.com/medassist-pro/api/internal/domain"
)

// FacilitySearchRepository queries an external POI source for facilities
// of a category around a center point. Implementations return raw records
// untouched (no filtering, sorting or normalization) and make exactly one
// attempt per call; retries are the caller's decision.
type FacilitySearchRepository interface {
	SearchFacilities(ctx context.Context, center domain.Coordinate, radiusMeters int, category string) ([]domain.RawFacility, error)
}
