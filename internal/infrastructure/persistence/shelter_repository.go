package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormShelterRepository implements partner.ShelterRepository using GORM
type GormShelterRepository struct {
	db *gorm.DB
}

// NewGormShelterRepository creates a new GormShelterRepository
func NewGormShelterRepository(db *gorm.DB) *GormShelterRepository {
	return &GormShelterRepository{db: db}
}

// Create inserts a new shelter profile
func (r *GormShelterRepository) Create(ctx context.Context, shelter *partner.Shelter) error {
	model := models.ShelterModelFromDomain(shelter)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves a shelter with optimistic locking (version check)
func (r *GormShelterRepository) Update(ctx context.Context, shelter *partner.Shelter) error {
	model := models.ShelterModelFromDomain(shelter)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", shelter.ID, shelter.Version-1).
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

// FindByID finds a shelter by its ID
func (r *GormShelterRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Shelter, error) {
	var model models.ShelterModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner finds the shelter owned by a user
func (r *GormShelterRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*partner.Shelter, error) {
	var model models.ShelterModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds shelters matching the filter, newest first
func (r *GormShelterRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]*partner.Shelter, int64, error) {
	query := applyPartnerFilter(r.db.WithContext(ctx).Model(&models.ShelterModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shelterModels []models.ShelterModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&shelterModels).Error; err != nil {
		return nil, 0, err
	}

	shelters := make([]*partner.Shelter, len(shelterModels))
	for i := range shelterModels {
		shelters[i] = shelterModels[i].ToDomain()
	}
	return shelters, total, nil
}

// ExistsByOwner checks if a user already owns a shelter profile
func (r *GormShelterRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ShelterModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count > 0, err
}

// applyPartnerFilter adds the shared shelter/vendor predicates to a query
func applyPartnerFilter(query *gorm.DB, filter partner.PartnerFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+strings.TrimSpace(filter.Search)+"%")
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if filter.Municipality != "" {
		query = query.Where("municipality = ?", filter.Municipality)
	}
	return query
}

// Ensure GormShelterRepository implements partner.ShelterRepository
var _ partner.ShelterRepository = (*GormShelterRepository)(nil)
