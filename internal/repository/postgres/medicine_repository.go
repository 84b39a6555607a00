package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
)

type medicineRepository struct {
	db *DB
}

// NewMedicineRepository creates the Postgres medicine catalog store.
func NewMedicineRepository(db *DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) FindByDisease(ctx context.Context, disease string) (*domain.Medicine, error) {
	const query = `
		SELECT id, disease, medicines, description, category, is_active, created_at, updated_at
		FROM medicines
		WHERE disease = $1 AND is_active = TRUE`

	var m domain.Medicine
	err := r.db.GetContext(ctx, &m, query, strings.ToLower(strings.TrimSpace(disease)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find medicine: %w", err)
	}

	return &m, nil
}

func (r *medicineRepository) List(ctx context.Context) ([]domain.Medicine, error) {
	const query = `
		SELECT id, disease, medicines, description, category, is_active, created_at, updated_at
		FROM medicines
		WHERE is_active = TRUE
		ORDER BY disease ASC`

	medicines := []domain.Medicine{}
	if err := r.db.SelectContext(ctx, &medicines, query); err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}

	return medicines, nil
}

func (r *medicineRepository) Create(ctx context.Context, m *domain.Medicine) error {
	const query = `
		INSERT INTO medicines (disease, medicines, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at`

	m.Disease = strings.ToLower(strings.TrimSpace(m.Disease))
	if m.Category == "" {
		m.Category = domain.MedicineCategoryGeneral
	}

	err := r.db.QueryRowxContext(ctx, query, m.Disease, m.Medicines, m.Description, m.Category).
		Scan(&m.ID, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}

	return nil
}

func (r *medicineRepository) Update(ctx context.Context, m *domain.Medicine) error {
	const query = `
		UPDATE medicines
		SET medicines = $2, description = $3, category = $4, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query, m.ID, m.Medicines, m.Description, m.Category).
		Scan(&m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}

	return nil
}

func (r *medicineRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE medicines SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate medicine: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *medicineRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM medicines`); err != nil {
		return 0, fmt.Errorf("failed to count medicines: %w", err)
	}

	return count, nil
}
