package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/pkg/utils"
)

const (
	unnamedFacilityName = "Unnamed Hospital"
	noAddressSentinel   = "Address not available"
	defaultCategory     = "hospital"
)

// NormalizeFacility converts one raw upstream record into the canonical
// facility schema, computing its distance from center. Records without a
// resolvable coordinate are unusable and yield nil.
func NormalizeFacility(raw domain.RawFacility, center domain.Coordinate) *domain.Facility {
	coord := resolveCoordinate(raw)
	if coord == nil {
		return nil
	}

	tags := raw.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	f := &domain.Facility{
		ID:               fmt.Sprintf("%s_%s", raw.Source, raw.ID),
		SourceID:         raw.ID,
		SourceType:       raw.Source,
		Name:             resolveName(tags),
		Lat:              coord.Lat,
		Lng:              coord.Lng,
		DistanceKm:       utils.HaversineDistance(center.Lat, center.Lng, coord.Lat, coord.Lng),
		Address:          resolveAddress(tags),
		EmergencyService: resolveEmergency(tags),
		Category:         resolveCategory(tags),
		Phone:            firstTag(tags, "phone", "phone:emergency"),
		Website:          firstTag(tags, "website"),
		Operator:         firstTag(tags, "operator"),
		OpeningHours:     firstTag(tags, "opening_hours"),
		Wheelchair:       firstTag(tags, "wheelchair"),
	}

	if beds, ok := tags["beds"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(beds)); err == nil {
			f.Beds = &n
		}
	}

	return f
}

// resolveCoordinate prefers a direct lat/lng pair; way/relation records
// only carry a centroid.
func resolveCoordinate(raw domain.RawFacility) *domain.Coordinate {
	if raw.Lat != nil && raw.Lng != nil {
		return &domain.Coordinate{Lat: *raw.Lat, Lng: *raw.Lng}
	}
	if raw.Center != nil {
		return raw.Center
	}
	return nil
}

func resolveName(tags map[string]string) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if name := tags["name:en"]; name != "" {
		return name
	}
	return unnamedFacilityName
}

// resolveAddress joins structured addr components in fixed order, falling
// back to free-text fields and finally the sentinel.
func resolveAddress(tags map[string]string) string {
	parts := []string{}
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:state", "addr:postcode"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if v := tags["address"]; v != "" {
		return v
	}
	if v := tags["addr:full"]; v != "" {
		return v
	}
	return noAddressSentinel
}

// resolveEmergency treats absence of information as false, never unknown.
func resolveEmergency(tags map[string]string) bool {
	if tags["emergency"] == "yes" {
		return true
	}
	return strings.Contains(tags["healthcare:speciality"], "emergency")
}

func resolveCategory(tags map[string]string) string {
	if v := tags["amenity"]; v != "" {
		return v
	}
	if v := tags["healthcare"]; v != "" {
		return v
	}
	return defaultCategory
}

func firstTag(tags map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v := tags[key]; v != "" {
			return &v
		}
	}
	return nil
}
