package domain

// Coordinate is a WGS84 lat/lon pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeCandidate is one ranked result of a free-text place lookup.
type GeocodeCandidate struct {
	Coordinate  Coordinate `json:"coordinate"`
	DisplayName string     `json:"display_name"`
}

// RawFacility is a facility record exactly as the upstream POI source
// delivered it: a source discriminant, an opaque upstream id, a tag map
// with no guaranteed keys, and either direct coordinates or a centroid
// (way/relation-style entities carry only the latter). Nothing here is
// trusted until it passes normalization.
type RawFacility struct {
	Source string            `json:"source"`
	ID     string            `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lng    *float64          `json:"lng,omitempty"`
	Center *Coordinate       `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Facility is the canonical, normalized facility record returned to
// callers. Instances are built fresh per search and never mutated.
type Facility struct {
	ID               string  `json:"id"`
	SourceID         string  `json:"source_id,omitempty"`
	SourceType       string  `json:"source_type,omitempty"`
	Name             string  `json:"name"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	DistanceKm       float64 `json:"distance_km"`
	Phone            *string `json:"phone,omitempty"`
	Website          *string `json:"website,omitempty"`
	Address          string  `json:"address"`
	EmergencyService bool    `json:"emergency_service"`
	Category         string  `json:"category"`
	Beds             *int    `json:"beds,omitempty"`
	Operator         *string `json:"operator,omitempty"`
	OpeningHours     *string `json:"opening_hours,omitempty"`
	Wheelchair       *string `json:"wheelchair,omitempty"`
}
