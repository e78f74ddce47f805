package adoption

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// Favorite is a saved-for-later marker a user places on a pet. It is a plain
// join row; toggling creates or removes it.
type Favorite struct {
	UserID    uuid.UUID
	PetID     uuid.UUID
	CreatedAt time.Time
}

// NewFavorite creates a new favorite marker
func NewFavorite(userID, petID uuid.UUID) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if petID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PET", "Pet ID cannot be empty")
	}

	return &Favorite{
		UserID:    userID,
		PetID:     petID,
		CreatedAt: time.Now(),
	}, nil
}
