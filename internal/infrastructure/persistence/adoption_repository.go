package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdoptionRepository implements adoption.Repository using GORM
type GormAdoptionRepository struct {
	db *gorm.DB
}

// NewGormAdoptionRepository creates a new GormAdoptionRepository
func NewGormAdoptionRepository(db *gorm.DB) *GormAdoptionRepository {
	return &GormAdoptionRepository{db: db}
}

// Create inserts a new adoption application
func (r *GormAdoptionRepository) Create(ctx context.Context, app *adoption.Adoption) error {
	model := models.AdoptionModelFromDomain(app)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves an application with optimistic locking (version check)
func (r *GormAdoptionRepository) Update(ctx context.Context, app *adoption.Adoption) error {
	model := models.AdoptionModelFromDomain(app)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", app.ID, app.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds an application by its ID
func (r *GormAdoptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*adoption.Adoption, error) {
	var model models.AdoptionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds applications matching the filter, newest first
func (r *GormAdoptionRepository) FindAll(ctx context.Context, filter adoption.Filter) ([]*adoption.Adoption, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdoptionModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AdopterID != nil {
		query = query.Where("adopter_id = ?", *filter.AdopterID)
	}
	if filter.ShelterID != nil {
		query = query.Where("shelter_id = ?", *filter.ShelterID)
	}
	if filter.PetID != nil {
		query = query.Where("pet_id = ?", *filter.PetID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var adoptionModels []models.AdoptionModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&adoptionModels).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*adoption.Adoption, len(adoptionModels))
	for i := range adoptionModels {
		apps[i] = adoptionModels[i].ToDomain()
	}
	return apps, total, nil
}

// ExistsOpenForPair reports whether a non-rejected application exists for
// the (adopter, pet) pair
func (r *GormAdoptionRepository) ExistsOpenForPair(ctx context.Context, adopterID, petID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdoptionModel{}).
		Where("adopter_id = ? AND pet_id = ? AND status <> ?", adopterID, petID, adoption.StatusRejected).
		Count(&count).Error
	return count > 0, err
}

// FindPendingByPet returns all pending applications for a pet
func (r *GormAdoptionRepository) FindPendingByPet(ctx context.Context, petID uuid.UUID) ([]*adoption.Adoption, error) {
	var adoptionModels []models.AdoptionModel
	if err := r.db.WithContext(ctx).
		Where("pet_id = ? AND status = ?", petID, adoption.StatusPending).
		Find(&adoptionModels).Error; err != nil {
		return nil, err
	}

	apps := make([]*adoption.Adoption, len(adoptionModels))
	for i := range adoptionModels {
		apps[i] = adoptionModels[i].ToDomain()
	}
	return apps, nil
}

// Ensure GormAdoptionRepository implements adoption.Repository
var _ adoption.Repository = (*GormAdoptionRepository)(nil)
