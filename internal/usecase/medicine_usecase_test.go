package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"github.com/medassist-pro/api/internal/usecase/dto"
)

type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) FindByDisease(ctx context.Context, disease string) (*domain.Medicine, error) {
	args := m.Called(ctx, disease)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) List(ctx context.Context) ([]domain.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Create(ctx context.Context, med *domain.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, med *domain.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicineRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Prescription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prescription), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func newMedicineUseCase(med *MockMedicineRepository, presc *MockPrescriptionRepository, cache *MockCacheRepository) *MedicineUseCase {
	return NewMedicineUseCase(med, presc, cache, zap.NewNop(), 10*time.Minute)
}

func TestMedicineUseCase_Search(t *testing.T) {
	t.Run("hit records prescription", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		cache.On("Get", mock.Anything, "medicine:search:fever").Return(nil, nil)
		med.On("FindByDisease", mock.Anything, "fever").Return(&domain.Medicine{
			ID:        3,
			Disease:   "fever",
			Medicines: "Paracetamol, Ibuprofen, Aspirin",
		}, nil)
		cache.On("Set", mock.Anything, "medicine:search:fever", mock.Anything, 10*time.Minute).Return(nil)
		presc.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Prescription) bool {
			return p.Symptom == "fever" && p.Medicines == "Paracetamol, Ibuprofen, Aspirin" &&
				p.IPAddress != nil && *p.IPAddress == "10.0.0.1"
		})).Return(nil)

		resp, err := uc.Search(context.Background(), dto.MedicineSearchRequest{Symptom: " Fever "}, "10.0.0.1")
		require.NoError(t, err)

		assert.True(t, resp.Found)
		assert.Equal(t, "fever", resp.Symptom)
		assert.Equal(t, "Paracetamol, Ibuprofen, Aspirin", resp.Medicines)
		med.AssertExpectations(t)
		presc.AssertExpectations(t)
	})

	t.Run("miss is a normal response", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		cache.On("Get", mock.Anything, "medicine:search:unknownitis").Return(nil, nil)
		med.On("FindByDisease", mock.Anything, "unknownitis").Return(nil, nil)
		cache.On("Set", mock.Anything, "medicine:search:unknownitis", mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.Search(context.Background(), dto.MedicineSearchRequest{Symptom: "unknownitis"}, "")
		require.NoError(t, err)

		assert.False(t, resp.Found)
		assert.NotEmpty(t, resp.Message)
		presc.AssertNotCalled(t, "Create")
	})

	t.Run("cached response skips the database", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		cached, err := json.Marshal(dto.MedicineSearchResponse{
			Found:     true,
			Symptom:   "cough",
			Medicines: "Cough Syrup, Honey, Dextromethorphan",
		})
		require.NoError(t, err)

		cache.On("Get", mock.Anything, "medicine:search:cough").Return(cached, nil)
		presc.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.Search(context.Background(), dto.MedicineSearchRequest{Symptom: "cough"}, "")
		require.NoError(t, err)

		assert.True(t, resp.Found)
		med.AssertNotCalled(t, "FindByDisease")
	})

	t.Run("history write failure never fails the lookup", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		cache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		med.On("FindByDisease", mock.Anything, "fever").Return(&domain.Medicine{
			Disease: "fever", Medicines: "Paracetamol",
		}, nil)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		presc.On("Create", mock.Anything, mock.Anything).Return(sql.ErrConnDone)

		resp, err := uc.Search(context.Background(), dto.MedicineSearchRequest{Symptom: "fever"}, "")
		require.NoError(t, err)
		assert.True(t, resp.Found)
	})
}

func TestMedicineUseCase_Create(t *testing.T) {
	t.Run("new disease", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("FindByDisease", mock.Anything, "migraine").Return(nil, nil)
		med.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Medicine) bool {
			return m.Disease == "migraine"
		})).Return(nil)
		cache.On("Delete", mock.Anything, "medicine:search:migraine").Return(nil)

		m, err := uc.Create(context.Background(), dto.CreateMedicineRequest{
			Disease:   " Migraine ",
			Medicines: "Sumatriptan, Ibuprofen",
			Category:  domain.MedicineCategoryOTC,
		})
		require.NoError(t, err)
		assert.Equal(t, "migraine", m.Disease)
		med.AssertExpectations(t)
	})

	t.Run("existing disease is a conflict", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("FindByDisease", mock.Anything, "fever").Return(&domain.Medicine{Disease: "fever"}, nil)

		_, err := uc.Create(context.Background(), dto.CreateMedicineRequest{
			Disease:   "fever",
			Medicines: "Paracetamol",
		})
		assert.ErrorIs(t, err, errors.ErrMedicineExists)
		med.AssertNotCalled(t, "Create")
	})
}

func TestMedicineUseCase_UpdateDelete(t *testing.T) {
	t.Run("update missing row", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("Update", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

		_, err := uc.Update(context.Background(), 99, dto.UpdateMedicineRequest{Medicines: "X"})
		assert.ErrorIs(t, err, errors.ErrMedicineNotFound)
	})

	t.Run("delete missing row", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("Deactivate", mock.Anything, int64(99)).Return(sql.ErrNoRows)

		err := uc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, errors.ErrMedicineNotFound)
	})

	t.Run("delete existing row", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("Deactivate", mock.Anything, int64(3)).Return(nil)

		assert.NoError(t, uc.Delete(context.Background(), 3))
	})
}

func TestMedicineUseCase_SeedDefaults(t *testing.T) {
	t.Run("seeds when empty", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("Count", mock.Anything).Return(0, nil)
		med.On("Create", mock.Anything, mock.Anything).Return(nil).Times(10)

		require.NoError(t, uc.SeedDefaults(context.Background()))
		med.AssertExpectations(t)
	})

	t.Run("skips a populated catalog", func(t *testing.T) {
		med := new(MockMedicineRepository)
		presc := new(MockPrescriptionRepository)
		cache := new(MockCacheRepository)
		uc := newMedicineUseCase(med, presc, cache)

		med.On("Count", mock.Anything).Return(12, nil)

		require.NoError(t, uc.SeedDefaults(context.Background()))
		med.AssertNotCalled(t, "Create")
	})
}

func TestMedicineUseCase_ListPrescriptions(t *testing.T) {
	med := new(MockMedicineRepository)
	presc := new(MockPrescriptionRepository)
	cache := new(MockCacheRepository)
	uc := newMedicineUseCase(med, presc, cache)

	// Out-of-range limits fall back to the default page size.
	presc.On("ListRecent", mock.Anything, 50).Return([]domain.Prescription{}, nil)

	resp, err := uc.ListPrescriptions(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	presc.AssertExpectations(t)
}
