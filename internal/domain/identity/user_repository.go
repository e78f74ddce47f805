package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (case-insensitive)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns users matching the filter with pagination
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserFilter contains filter options for querying users. All predicates are
// combined with AND.
type UserFilter struct {
	shared.PageRequest

	// Search matches name or email, case-insensitive substring
	Search string

	// Filter by role
	Role *Role

	// Filter by status
	Status *UserStatus

	// Filter by municipality (exact match)
	Municipality string
}

// UserAuditRepository defines the interface for audit log persistence.
// Entries are append-only.
type UserAuditRepository interface {
	// Create inserts a new audit entry
	Create(ctx context.Context, entry *UserAudit) error

	// FindByTarget returns the audit trail for a target user, newest first
	FindByTarget(ctx context.Context, targetID uuid.UUID, page shared.PageRequest) ([]*UserAudit, int64, error)
}
