package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// PetFilter contains filter options for querying pets. All predicates are
// combined with AND; results are ordered newest-first.
type PetFilter struct {
	shared.PageRequest

	// Search matches name or breed, case-insensitive substring
	Search string

	// Filter by species (exact, lowercased)
	Species string

	// Filter by municipality (exact match)
	Municipality string

	// Filter by sex
	Sex *PetSex

	// Age range in months, inclusive
	MinAgeMonths *int
	MaxAgeMonths *int

	// Filter by status
	Status *PetStatus

	// Restrict to a single shelter
	ShelterID *uuid.UUID

	// VerifiedSheltersOnly restricts results to pets of verified shelters.
	// Public discovery always sets this.
	VerifiedSheltersOnly bool
}

// PetRepository defines the interface for pet persistence
type PetRepository interface {
	Create(ctx context.Context, pet *Pet) error
	Update(ctx context.Context, pet *Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Pet, error)
	FindAll(ctx context.Context, filter PetFilter) ([]*Pet, int64, error)
}
