package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// PartnerFilter contains filter options for querying shelters and vendors
type PartnerFilter struct {
	shared.PageRequest

	// Search matches name, case-insensitive substring
	Search string

	// Filter by verification state
	Verified *bool

	// Filter by municipality (exact match)
	Municipality string
}

// ShelterRepository defines the interface for shelter persistence
type ShelterRepository interface {
	Create(ctx context.Context, shelter *Shelter) error
	Update(ctx context.Context, shelter *Shelter) error
	FindByID(ctx context.Context, id uuid.UUID) (*Shelter, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Shelter, error)
	FindAll(ctx context.Context, filter PartnerFilter) ([]*Shelter, int64, error)
	ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	Update(ctx context.Context, vendor *Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Vendor, error)
	FindAll(ctx context.Context, filter PartnerFilter) ([]*Vendor, int64, error)
	ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
}
