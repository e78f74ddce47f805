package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFavoriteRepository implements adoption.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Create inserts a favorite marker. Duplicate toggles race against each
// other, so conflicts on the pair key are ignored.
func (r *GormFavoriteRepository) Create(ctx context.Context, fav *adoption.Favorite) error {
	model := models.FavoriteModelFromDomain(fav)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// Delete removes a favorite marker
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID, petID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.FavoriteModel{}, "user_id = ? AND pet_id = ?", userID, petID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists checks if the user has favorited the pet
func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, petID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ? AND pet_id = ?", userID, petID).
		Count(&count).Error
	return count > 0, err
}

// FindPetIDsByUser returns the full favorited pet ID set for a user
func (r *GormFavoriteRepository) FindPetIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var petIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("pet_id", &petIDs).Error
	return petIDs, err
}

// FindByUser returns the user's favorites with pagination, newest first
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID, page shared.PageRequest) ([]*adoption.Favorite, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favoriteModels []models.FavoriteModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&favoriteModels).Error; err != nil {
		return nil, 0, err
	}

	favorites := make([]*adoption.Favorite, len(favoriteModels))
	for i := range favoriteModels {
		favorites[i] = favoriteModels[i].ToDomain()
	}
	return favorites, total, nil
}

// Ensure GormFavoriteRepository implements adoption.FavoriteRepository
var _ adoption.FavoriteRepository = (*GormFavoriteRepository)(nil)
