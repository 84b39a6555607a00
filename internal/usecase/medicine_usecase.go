package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"github.com/medassist-pro/api/internal/usecase/dto"
)

// defaultMedicines seeds an empty catalog on first start.
var defaultMedicines = []domain.Medicine{
	{Disease: "cough", Medicines: "Cough Syrup, Honey, Dextromethorphan"},
	{Disease: "cold", Medicines: "Antihistamines, Decongestants, Vitamin C"},
	{Disease: "fever", Medicines: "Paracetamol, Ibuprofen, Aspirin"},
	{Disease: "headache", Medicines: "Aspirin, Acetaminophen, Ibuprofen"},
	{Disease: "hypertension", Medicines: "Amlodipine, Lisinopril, Losartan"},
	{Disease: "stomach ache", Medicines: "Antacid, Omeprazole, Simethicone"},
	{Disease: "sore throat", Medicines: "Throat Lozenges, Ibuprofen, Gargling Salt Water"},
	{Disease: "nausea", Medicines: "Ondansetron, Ginger, Dramamine"},
	{Disease: "dizziness", Medicines: "Meclizine, Betahistine, Rest and Hydration"},
	{Disease: "muscle pain", Medicines: "Ibuprofen, Topical Analgesics, Heat Therapy"},
}

// MedicineUseCase is the symptom->medicine lookup plus the catalog admin
// surface. Lookups go through the cache; hits are recorded as
// prescription history.
type MedicineUseCase struct {
	medicineRepo     repository.MedicineRepository
	prescriptionRepo repository.PrescriptionRepository
	cacheRepo        repository.CacheRepository
	logger           *zap.Logger
	cacheTTL         time.Duration
}

// NewMedicineUseCase creates a new MedicineUseCase.
func NewMedicineUseCase(
	medicineRepo repository.MedicineRepository,
	prescriptionRepo repository.PrescriptionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MedicineUseCase {
	return &MedicineUseCase{
		medicineRepo:     medicineRepo,
		prescriptionRepo: prescriptionRepo,
		cacheRepo:        cacheRepo,
		logger:           logger,
		cacheTTL:         cacheTTL,
	}
}

// Search answers a symptom lookup. A miss is a normal response, not an
// error; history-write and cache failures never fail the lookup.
func (uc *MedicineUseCase) Search(ctx context.Context, req dto.MedicineSearchRequest, ip string) (*dto.MedicineSearchResponse, error) {
	symptom := strings.ToLower(strings.TrimSpace(req.Symptom))

	cacheKey := "medicine:search:" + symptom
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
			var resp dto.MedicineSearchResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				uc.recordPrescription(ctx, &resp, req.UserID, ip)
				return &resp, nil
			}
		}
	}

	medicine, err := uc.medicineRepo.FindByDisease(ctx, symptom)
	if err != nil {
		uc.logger.Error("Medicine lookup failed", zap.String("symptom", symptom), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	resp := &dto.MedicineSearchResponse{
		Found:   medicine != nil,
		Symptom: symptom,
	}
	if medicine != nil {
		resp.Medicines = medicine.Medicines
		resp.Description = medicine.Description
	} else {
		resp.Message = "No medicine recommendations found for this symptom"
	}

	if uc.cacheRepo != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, payload, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache medicine search", zap.Error(err))
			}
		}
	}

	uc.recordPrescription(ctx, resp, req.UserID, ip)

	return resp, nil
}

func (uc *MedicineUseCase) recordPrescription(ctx context.Context, resp *dto.MedicineSearchResponse, userID *string, ip string) {
	if !resp.Found {
		return
	}

	p := &domain.Prescription{
		UserID:    userID,
		Symptom:   resp.Symptom,
		Medicines: resp.Medicines,
	}
	if ip != "" {
		p.IPAddress = &ip
	}

	if err := uc.prescriptionRepo.Create(ctx, p); err != nil {
		uc.logger.Warn("Failed to record prescription", zap.String("symptom", resp.Symptom), zap.Error(err))
	}
}

// List returns the active catalog ordered by disease.
func (uc *MedicineUseCase) List(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := uc.medicineRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list medicines", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.MedicineListResponse{
		Medicines: medicines,
		Total:     len(medicines),
	}, nil
}

// Create adds a catalog entry; an existing disease is a conflict.
func (uc *MedicineUseCase) Create(ctx context.Context, req dto.CreateMedicineRequest) (*domain.Medicine, error) {
	disease := strings.ToLower(strings.TrimSpace(req.Disease))

	existing, err := uc.medicineRepo.FindByDisease(ctx, disease)
	if err != nil {
		uc.logger.Error("Failed to check existing medicine", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if existing != nil {
		return nil, errors.ErrMedicineExists
	}

	m := &domain.Medicine{
		Disease:     disease,
		Medicines:   req.Medicines,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := uc.medicineRepo.Create(ctx, m); err != nil {
		uc.logger.Error("Failed to create medicine", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.invalidateSearch(ctx, disease)

	return m, nil
}

// Update modifies an existing catalog entry.
func (uc *MedicineUseCase) Update(ctx context.Context, id int64, req dto.UpdateMedicineRequest) (*domain.Medicine, error) {
	m := &domain.Medicine{
		ID:          id,
		Medicines:   req.Medicines,
		Description: req.Description,
		Category:    req.Category,
	}
	if m.Category == "" {
		m.Category = domain.MedicineCategoryGeneral
	}

	err := uc.medicineRepo.Update(ctx, m)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrMedicineNotFound
	}
	if err != nil {
		uc.logger.Error("Failed to update medicine", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return m, nil
}

// Delete soft-deletes a catalog entry.
func (uc *MedicineUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.medicineRepo.Deactivate(ctx, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrMedicineNotFound
	}
	if err != nil {
		uc.logger.Error("Failed to delete medicine", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// ListPrescriptions returns the most recent symptom lookups.
func (uc *MedicineUseCase) ListPrescriptions(ctx context.Context, limit int) (*dto.PrescriptionListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	prescriptions, err := uc.prescriptionRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list prescriptions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: prescriptions,
		Total:         len(prescriptions),
	}, nil
}

// SeedDefaults populates an empty catalog with the default entries.
func (uc *MedicineUseCase) SeedDefaults(ctx context.Context) error {
	count, err := uc.medicineRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range defaultMedicines {
		m := defaultMedicines[i]
		if err := uc.medicineRepo.Create(ctx, &m); err != nil {
			return err
		}
	}

	uc.logger.Info("Default medicines initialized", zap.Int("count", len(defaultMedicines)))
	return nil
}

func (uc *MedicineUseCase) invalidateSearch(ctx context.Context, disease string) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.Delete(ctx, "medicine:search:"+disease); err != nil {
		uc.logger.Warn("Failed to invalidate medicine cache", zap.String("disease", disease), zap.Error(err))
	}
}
