package dto

// GeocodeRequest resolves a free-text place name.
type GeocodeRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}

// NearbyHospitalsRequest locates hospitals around a coordinate or a city.
// Exactly one of (Lat,Lng) / City must be supplied; RadiusMeters defaults
// at the handler.
type NearbyHospitalsRequest struct {
	Lat          *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	City         string   `json:"city" validate:"omitempty,min=2"`
	RadiusMeters int      `json:"radius" validate:"omitempty,max=50000"`
}

// MedicineSearchRequest looks up a recommendation by symptom.
type MedicineSearchRequest struct {
	Symptom string  `json:"symptom" validate:"required,min=2"`
	UserID  *string `json:"user_id,omitempty"`
}

// CreateMedicineRequest adds a catalog entry.
type CreateMedicineRequest struct {
	Disease     string  `json:"disease" validate:"required,min=2"`
	Medicines   string  `json:"medicines" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"omitempty,oneof=general prescription otc"`
}

// UpdateMedicineRequest modifies a catalog entry.
type UpdateMedicineRequest struct {
	Medicines   string  `json:"medicines" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"omitempty,oneof=general prescription otc"`
}

// ChatRequest is one assistant turn with optional prior context.
type ChatRequest struct {
	Message      string        `json:"message" validate:"required,min=1,max=2000"`
	Context      []ChatMessage `json:"context" validate:"omitempty,max=50,dive"`
	SystemPrompt string        `json:"system_prompt" validate:"omitempty,max=2000"`
}

// ChatMessage is a prior conversation turn supplied by the client.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}
