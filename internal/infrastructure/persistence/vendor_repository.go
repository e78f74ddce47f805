package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVendorRepository implements partner.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Create inserts a new vendor profile
func (r *GormVendorRepository) Create(ctx context.Context, vendor *partner.Vendor) error {
	model := models.VendorModelFromDomain(vendor)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves a vendor with optimistic locking (version check)
func (r *GormVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	model := models.VendorModelFromDomain(vendor)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", vendor.ID, vendor.Version-1).
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

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner finds the vendor owned by a user
func (r *GormVendorRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*partner.Vendor, error) {
	var model models.VendorModel
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

// FindAll finds vendors matching the filter, newest first
func (r *GormVendorRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]*partner.Vendor, int64, error) {
	query := applyPartnerFilter(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendorModels []models.VendorModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&vendorModels).Error; err != nil {
		return nil, 0, err
	}

	vendors := make([]*partner.Vendor, len(vendorModels))
	for i := range vendorModels {
		vendors[i] = vendorModels[i].ToDomain()
	}
	return vendors, total, nil
}

// ExistsByOwner checks if a user already owns a vendor profile
func (r *GormVendorRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.VendorModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count > 0, err
}

// Ensure GormVendorRepository implements partner.VendorRepository
var _ partner.VendorRepository = (*GormVendorRepository)(nil)
