package usecase

import (
	"context"
	stderrors "errors"
	"sort"

	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"github.com/medassist-pro/api/internal/pkg/utils"
	"github.com/medassist-pro/api/internal/usecase/dto"
)

// fallbackIDPrefix marks synthetic facility IDs so they can never be
// mistaken for upstream records.
const fallbackIDPrefix = "fallback"

// HospitalUseCase resolves nearby hospitals: geocode the city if no
// coordinate was given, query the facility source, normalize and sort,
// and degrade to deterministic synthetic data when the source is down.
type HospitalUseCase struct {
	geocoder   repository.GeocodingRepository
	facilities repository.FacilitySearchRepository
	logger     *zap.Logger
}

// NewHospitalUseCase creates a new HospitalUseCase.
func NewHospitalUseCase(
	geocoder repository.GeocodingRepository,
	facilities repository.FacilitySearchRepository,
	logger *zap.Logger,
) *HospitalUseCase {
	return &HospitalUseCase{
		geocoder:   geocoder,
		facilities: facilities,
		logger:     logger,
	}
}

// Geocode resolves a free-text place name to ranked candidates. Zero
// candidates is LocationNotFound; upstream failures propagate as-is.
func (uc *HospitalUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	candidates, err := uc.geocoder.Geocode(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.String("query", req.Query), zap.Error(err))
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.ErrLocationNotFound
	}

	return &dto.GeocodeResponse{
		Candidates: candidates,
		Total:      len(candidates),
	}, nil
}

// ResolveFacilities is the single entry point of the resolution pipeline.
func (uc *HospitalUseCase) ResolveFacilities(ctx context.Context, req dto.NearbyHospitalsRequest) (*dto.NearbyHospitalsResponse, error) {
	if !utils.ValidateRadiusMeters(req.RadiusMeters) {
		return nil, errors.ErrInvalidRadius
	}

	center, err := uc.resolveCenter(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := uc.facilities.SearchFacilities(ctx, *center, req.RadiusMeters, defaultCategory)
	if err != nil {
		// The enclosing request was cancelled: not an upstream outage.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !stderrors.Is(err, errors.ErrUpstreamUnavailable) {
			return nil, err
		}

		uc.logger.Warn("Facility search unavailable, serving fallback data",
			zap.Float64("lat", center.Lat),
			zap.Float64("lng", center.Lng),
			zap.Error(err))

		facilities := FallbackFacilities(*center)
		return &dto.NearbyHospitalsResponse{
			Hospitals:    facilities,
			Count:        len(facilities),
			Center:       *center,
			RadiusMeters: req.RadiusMeters,
			Fallback:     true,
		}, nil
	}

	facilities := make([]domain.Facility, 0, len(raw))
	for _, r := range raw {
		if f := NormalizeFacility(r, *center); f != nil {
			facilities = append(facilities, *f)
		}
	}

	// Stable sort keeps upstream order among equal distances.
	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DistanceKm < facilities[j].DistanceKm
	})

	uc.logger.Debug("Facility resolution completed",
		zap.Int("raw", len(raw)),
		zap.Int("normalized", len(facilities)))

	return &dto.NearbyHospitalsResponse{
		Hospitals:    facilities,
		Count:        len(facilities),
		Center:       *center,
		RadiusMeters: req.RadiusMeters,
		Fallback:     false,
	}, nil
}

// resolveCenter picks the effective search center: the supplied
// coordinate, or the first geocoder candidate for the city query.
func (uc *HospitalUseCase) resolveCenter(ctx context.Context, req dto.NearbyHospitalsRequest) (*domain.Coordinate, error) {
	if req.Lat != nil && req.Lng != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		return &domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}, nil
	}

	if req.City == "" {
		return nil, errors.ErrMissingLocation
	}

	candidates, err := uc.geocoder.Geocode(ctx, req.City)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.String("city", req.City), zap.Error(err))
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{
			"city": req.City,
		})
	}

	return &candidates[0].Coordinate, nil
}

// FallbackFacilities returns a deterministic two-entry facility list
// anchored near center, used only when the upstream search is down.
func FallbackFacilities(center domain.Coordinate) []domain.Facility {
	entries := []struct {
		id        string
		name      string
		phone     string
		dLat      float64
		dLng      float64
		emergency bool
	}{
		{fallbackIDPrefix + "_1", "General Hospital", "+91-11-2500-0000", 0.01, 0.01, true},
		{fallbackIDPrefix + "_2", "Medical Center", "+91-11-2600-0000", -0.01, -0.01, false},
	}

	facilities := make([]domain.Facility, 0, len(entries))
	for _, e := range entries {
		phone := e.phone
		lat := center.Lat + e.dLat
		lng := center.Lng + e.dLng
		facilities = append(facilities, domain.Facility{
			ID:               e.id,
			SourceID:         e.id,
			SourceType:       fallbackIDPrefix,
			Name:             e.name,
			Lat:              lat,
			Lng:              lng,
			DistanceKm:       utils.HaversineDistance(center.Lat, center.Lng, lat, lng),
			Phone:            &phone,
			Address:          noAddressSentinel,
			EmergencyService: e.emergency,
			Category:         defaultCategory,
		})
	}

	return facilities
}
