package adoption

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// Filter contains filter options for querying adoption applications
type Filter struct {
	shared.PageRequest

	// Filter by status
	Status *Status

	// Restrict to one adopter's applications
	AdopterID *uuid.UUID

	// Restrict to one shelter's queue
	ShelterID *uuid.UUID

	// Restrict to one pet
	PetID *uuid.UUID
}

// Repository defines the interface for adoption persistence
type Repository interface {
	Create(ctx context.Context, app *Adoption) error
	Update(ctx context.Context, app *Adoption) error
	FindByID(ctx context.Context, id uuid.UUID) (*Adoption, error)
	FindAll(ctx context.Context, filter Filter) ([]*Adoption, int64, error)

	// ExistsOpenForPair reports whether a non-rejected application exists
	// for the (adopter, pet) pair.
	ExistsOpenForPair(ctx context.Context, adopterID, petID uuid.UUID) (bool, error)

	// FindPendingByPet returns all pending applications for a pet
	FindPendingByPet(ctx context.Context, petID uuid.UUID) ([]*Adoption, error)
}

// FavoriteRepository defines the interface for favorite persistence
type FavoriteRepository interface {
	Create(ctx context.Context, fav *Favorite) error
	Delete(ctx context.Context, userID, petID uuid.UUID) error
	Exists(ctx context.Context, userID, petID uuid.UUID) (bool, error)

	// FindPetIDsByUser returns the full favorited pet ID set for a user,
	// used as the cross-reference set on catalog views.
	FindPetIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FindByUser returns the user's favorites with pagination, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, page shared.PageRequest) ([]*Favorite, int64, error)
}
