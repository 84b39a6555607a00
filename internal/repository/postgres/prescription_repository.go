package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
)

type prescriptionRepository struct {
	db *DB
}

// NewPrescriptionRepository creates the Postgres prescription-history store.
func NewPrescriptionRepository(db *DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	const query = `
		INSERT INTO prescriptions (id, user_id, symptom, medicines, ip_address, search_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.SearchDate.IsZero() {
		p.SearchDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.Symptom, p.Medicines, p.IPAddress, p.SearchDate)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}

	return nil
}

func (r *prescriptionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Prescription, error) {
	const query = `
		SELECT id, user_id, symptom, medicines, ip_address, search_date
		FROM prescriptions
		ORDER BY search_date DESC
		LIMIT $1`

	prescriptions := []domain.Prescription{}
	if err := r.db.SelectContext(ctx, &prescriptions, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}

	return prescriptions, nil
}
