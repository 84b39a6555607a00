package dto

import "github.com/medassist-pro/api/internal/domain"

// GeocodeResponse lists ranked place candidates.
type GeocodeResponse struct {
	Candidates []domain.GeocodeCandidate `json:"candidates"`
	Total      int                       `json:"total"`
}

// NearbyHospitalsResponse is the resolved facility list, ordered by
// ascending distance. Fallback marks synthetic results.
type NearbyHospitalsResponse struct {
	Hospitals    []domain.Facility `json:"hospitals"`
	Count        int               `json:"count"`
	Center       domain.Coordinate `json:"center"`
	RadiusMeters int               `json:"radius"`
	Fallback     bool              `json:"fallback"`
}

// MedicineSearchResponse answers a symptom lookup.
type MedicineSearchResponse struct {
	Found       bool    `json:"found"`
	Symptom     string  `json:"symptom"`
	Medicines   string  `json:"medicines,omitempty"`
	Description *string `json:"description,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// MedicineListResponse lists active catalog entries.
type MedicineListResponse struct {
	Medicines []domain.Medicine `json:"medicines"`
	Total     int               `json:"total"`
}

// PrescriptionListResponse lists recent symptom lookups.
type PrescriptionListResponse struct {
	Prescriptions []domain.Prescription `json:"prescriptions"`
	Total         int                   `json:"total"`
}

// ChatResponse is one assistant reply. Fallback marks the static degraded
// message used when the LLM upstream is unavailable.
type ChatResponse struct {
	Response string            `json:"response"`
	Fallback bool              `json:"fallback"`
	Usage    *domain.ChatUsage `json:"usage,omitempty"`
}
