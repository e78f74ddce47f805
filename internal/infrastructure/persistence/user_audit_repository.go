package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserAuditRepository implements identity.UserAuditRepository using GORM.
// The moderation log is append-only; there is no update or delete path.
type GormUserAuditRepository struct {
	db *gorm.DB
}

// NewGormUserAuditRepository creates a new GormUserAuditRepository
func NewGormUserAuditRepository(db *gorm.DB) *GormUserAuditRepository {
	return &GormUserAuditRepository{db: db}
}

// Create inserts a new audit entry
func (r *GormUserAuditRepository) Create(ctx context.Context, entry *identity.UserAudit) error {
	model := models.UserAuditModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByTarget returns the audit trail for a target user, newest first
func (r *GormUserAuditRepository) FindByTarget(ctx context.Context, targetID uuid.UUID, page shared.PageRequest) ([]*identity.UserAudit, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.UserAuditModel{}).
		Where("target_id = ?", targetID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var auditModels []models.UserAuditModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&auditModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*identity.UserAudit, len(auditModels))
	for i := range auditModels {
		entries[i] = auditModels[i].ToDomain()
	}
	return entries, total, nil
}

// Ensure GormUserAuditRepository implements identity.UserAuditRepository
var _ identity.UserAuditRepository = (*GormUserAuditRepository)(nil)
