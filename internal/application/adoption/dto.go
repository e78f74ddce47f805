package adoption

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
)

// ApplyRequest represents a request to apply for adopting a pet
type ApplyRequest struct {
	PetID   uuid.UUID `json:"pet_id" binding:"required"`
	Message string    `json:"message" binding:"max=2000"`
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

// ListFilter contains list query parameters for adoption applications
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// ApplicationResponse represents an adoption application in API responses.
// Recent drives the adopter's notification badge for fresh decisions.
type ApplicationResponse struct {
	ID              uuid.UUID  `json:"id"`
	AdopterID       uuid.UUID  `json:"adopter_id"`
	PetID           uuid.UUID  `json:"pet_id"`
	ShelterID       uuid.UUID  `json:"shelter_id"`
	Message         string     `json:"message"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	Recent          bool       `json:"recent"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FavoriteResponse represents a favorited pet in API responses
type FavoriteResponse struct {
	PetID     uuid.UUID `json:"pet_id"`
	CreatedAt time.Time `json:"created_at"`

	// Pet summary, filled when the pet still exists
	PetName    string `json:"pet_name,omitempty"`
	PetSpecies string `json:"pet_species,omitempty"`
	PetStatus  string `json:"pet_status,omitempty"`
	PetPhoto   string `json:"pet_photo,omitempty"`
}

// ToggleResponse reports the new state after a favorite toggle
type ToggleResponse struct {
	PetID     uuid.UUID `json:"pet_id"`
	Favorited bool      `json:"favorited"`
}

// ToApplicationResponse converts a domain application to a response DTO
func ToApplicationResponse(a *adoption.Adoption, now time.Time) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		AdopterID:       a.AdopterID,
		PetID:           a.PetID,
		ShelterID:       a.ShelterID,
		Message:         a.Message,
		Status:          string(a.Status),
		RejectionReason: a.RejectionReason,
		DecidedAt:       a.DecidedAt,
		Recent:          a.IsRecent(now),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToApplicationResponses converts a slice of domain applications
func ToApplicationResponses(apps []*adoption.Adoption, now time.Time) []ApplicationResponse {
	responses := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		responses[i] = ToApplicationResponse(a, now)
	}
	return responses
}

// ToFavoriteResponse converts a favorite plus its pet (may be nil) to a DTO
func ToFavoriteResponse(f *adoption.Favorite, pet *catalog.Pet) FavoriteResponse {
	response := FavoriteResponse{
		PetID:     f.PetID,
		CreatedAt: f.CreatedAt,
	}
	if pet != nil {
		response.PetName = pet.Name
		response.PetSpecies = pet.Species
		response.PetStatus = string(pet.Status)
		if len(pet.PhotoURLs) > 0 {
			response.PetPhoto = pet.PhotoURLs[0]
		}
	}
	return response
}
