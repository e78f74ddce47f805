package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPetRepository implements catalog.PetRepository using GORM
type GormPetRepository struct {
	db *gorm.DB
}

// NewGormPetRepository creates a new GormPetRepository
func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// Create inserts a new pet
func (r *GormPetRepository) Create(ctx context.Context, pet *catalog.Pet) error {
	model := models.PetModelFromDomain(pet)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves a pet with optimistic locking (version check)
func (r *GormPetRepository) Update(ctx context.Context, pet *catalog.Pet) error {
	model := models.PetModelFromDomain(pet)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", pet.ID, pet.Version-1).
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

// Delete removes a pet
func (r *GormPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a pet by its ID
func (r *GormPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Pet, error) {
	var model models.PetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds pets matching the filter, newest first
func (r *GormPetRepository) FindAll(ctx context.Context, filter catalog.PetFilter) ([]*catalog.Pet, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PetModel{})

	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("pets.name ILIKE ? OR pets.breed ILIKE ?", pattern, pattern)
	}
	if filter.Species != "" {
		query = query.Where("pets.species = ?", strings.ToLower(filter.Species))
	}
	if filter.Municipality != "" {
		query = query.Where("pets.municipality = ?", filter.Municipality)
	}
	if filter.Sex != nil {
		query = query.Where("pets.sex = ?", *filter.Sex)
	}
	if filter.MinAgeMonths != nil {
		query = query.Where("pets.age_months >= ?", *filter.MinAgeMonths)
	}
	if filter.MaxAgeMonths != nil {
		query = query.Where("pets.age_months <= ?", *filter.MaxAgeMonths)
	}
	if filter.Status != nil {
		query = query.Where("pets.status = ?", *filter.Status)
	}
	if filter.ShelterID != nil {
		query = query.Where("pets.shelter_id = ?", *filter.ShelterID)
	}
	if filter.VerifiedSheltersOnly {
		query = query.Joins("JOIN shelters ON shelters.id = pets.shelter_id").
			Where("shelters.verified = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var petModels []models.PetModel
	if err := query.
		Order("pets.created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&petModels).Error; err != nil {
		return nil, 0, err
	}

	pets := make([]*catalog.Pet, len(petModels))
	for i := range petModels {
		pets[i] = petModels[i].ToDomain()
	}
	return pets, total, nil
}

// Ensure GormPetRepository implements catalog.PetRepository
var _ catalog.PetRepository = (*GormPetRepository)(nil)
