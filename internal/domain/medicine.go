package domain

import "time"

// Medicine maps one disease/symptom to a recommendation string.
type Medicine struct {
	ID          int64     `json:"id" db:"id"`
	Disease     string    `json:"disease" db:"disease"`
	Medicines   string    `json:"medicines" db:"medicines"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    string    `json:"category" db:"category"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Prescription is one recorded symptom lookup.
type Prescription struct {
	ID         string    `json:"id" db:"id"`
	UserID     *string   `json:"user_id,omitempty" db:"user_id"`
	Symptom    string    `json:"symptom" db:"symptom"`
	Medicines  string    `json:"medicines" db:"medicines"`
	IPAddress  *string   `json:"ip_address,omitempty" db:"ip_address"`
	SearchDate time.Time `json:"search_date" db:"search_date"`
}

// Medicine categories.
const (
	MedicineCategoryGeneral      = "general"
	MedicineCategoryPrescription = "prescription"
	MedicineCategoryOTC          = "otc"
)
