package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// AuditAction represents an admin action recorded against a user
type AuditAction string

const (
	AuditActionBlock      AuditAction = "BLOCK"
	AuditActionUnblock    AuditAction = "UNBLOCK"
	AuditActionChangeRole AuditAction = "CHANGE_ROLE"
)

// IsValid checks if the action is a known AuditAction
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionBlock, AuditActionUnblock, AuditActionChangeRole:
		return true
	}
	return false
}

// UserAudit is an immutable log row recording an admin action against a
// target user. Rows are only ever inserted.
type UserAudit struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	TargetID   uuid.UUID
	Action     AuditAction
	Detail     string
	CreatedAt  time.Time
}

// NewUserAudit creates a new audit entry
func NewUserAudit(adminID, targetID uuid.UUID, action AuditAction, detail string) (*UserAudit, error) {
	if adminID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADMIN", "Admin ID cannot be empty")
	}
	if targetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TARGET", "Target user ID cannot be empty")
	}
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTION", "Unknown audit action: "+string(action))
	}

	return &UserAudit{
		ID:        uuid.New(),
		AdminID:   adminID,
		TargetID:  targetID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}, nil
}
