package repository

import (
	"context"

	"github.com/medassist-pro/api/internal/domain"
)

// MedicineRepository is the medicine catalog store.
type MedicineRepository interface {
	FindByDisease(ctx context.Context, disease string) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	Create(ctx context.Context, m *domain.Medicine) error
	Update(ctx context.Context, m *domain.Medicine) error
	Deactivate(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// PrescriptionRepository records symptom lookups.
type PrescriptionRepository interface {
	Create(ctx context.Context, p *domain.Prescription) error
	ListRecent(ctx context.Context, limit int) ([]domain.Prescription, error)
}
