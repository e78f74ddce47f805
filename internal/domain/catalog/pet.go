package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// PetStatus represents the adoption status of a pet
type PetStatus string

const (
	PetStatusAvailable PetStatus = "AVAILABLE"
	PetStatusInProcess PetStatus = "IN_PROCESS"
	PetStatusAdopted   PetStatus = "ADOPTED"
)

// IsValid checks if the status is a known PetStatus
func (s PetStatus) IsValid() bool {
	switch s {
	case PetStatusAvailable, PetStatusInProcess, PetStatusAdopted:
		return true
	}
	return false
}

// String returns the string representation of PetStatus
func (s PetStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// An approved adoption moves the pet to IN_PROCESS; the shelter marks it
// ADOPTED once the hand-over completes, or returns it to AVAILABLE if the
// adoption falls through.
func (s PetStatus) CanTransitionTo(target PetStatus) bool {
	switch s {
	case PetStatusAvailable:
		return target == PetStatusInProcess
	case PetStatusInProcess:
		return target == PetStatusAdopted || target == PetStatusAvailable
	case PetStatusAdopted:
		return false
	}
	return false
}

// PetSex represents the sex of a pet
type PetSex string

const (
	PetSexMale   PetSex = "MALE"
	PetSexFemale PetSex = "FEMALE"
)

// IsValid checks if the value is a known PetSex
func (s PetSex) IsValid() bool {
	return s == PetSexMale || s == PetSexFemale
}

// Pet represents an animal published for adoption. It belongs to exactly one
// shelter. Only AVAILABLE pets of verified shelters appear in public
// discovery.
type Pet struct {
	shared.BaseAggregateRoot
	ShelterID    uuid.UUID
	Name         string
	Species      string
	Breed        string
	Sex          PetSex
	AgeMonths    int
	Size         string
	Municipality string
	Description  string
	PhotoURLs    []string
	Status       PetStatus
}

// NewPet creates a new pet in AVAILABLE status
func NewPet(shelterID uuid.UUID, name, species string, sex PetSex, ageMonths int, municipality string) (*Pet, error) {
	if shelterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHELTER", "Shelter ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Pet name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Pet name cannot exceed 100 characters")
	}
	if strings.TrimSpace(species) == "" {
		return nil, shared.NewDomainError("INVALID_SPECIES", "Species cannot be empty")
	}
	if !sex.IsValid() {
		return nil, shared.NewDomainError("INVALID_SEX", "Sex must be MALE or FEMALE")
	}
	if ageMonths < 0 {
		return nil, shared.NewDomainError("INVALID_AGE", "Age cannot be negative")
	}

	return &Pet{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShelterID:         shelterID,
		Name:              strings.TrimSpace(name),
		Species:           strings.ToLower(strings.TrimSpace(species)),
		Sex:               sex,
		AgeMonths:         ageMonths,
		Municipality:      strings.TrimSpace(municipality),
		PhotoURLs:         make([]string, 0),
		Status:            PetStatusAvailable,
	}, nil
}

// Update updates the pet's editable fields
func (p *Pet) Update(name, species, breed string, sex PetSex, ageMonths int, size, municipality, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Pet name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Pet name cannot exceed 100 characters")
	}
	if strings.TrimSpace(species) == "" {
		return shared.NewDomainError("INVALID_SPECIES", "Species cannot be empty")
	}
	if !sex.IsValid() {
		return shared.NewDomainError("INVALID_SEX", "Sex must be MALE or FEMALE")
	}
	if ageMonths < 0 {
		return shared.NewDomainError("INVALID_AGE", "Age cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Species = strings.ToLower(strings.TrimSpace(species))
	p.Breed = strings.TrimSpace(breed)
	p.Sex = sex
	p.AgeMonths = ageMonths
	p.Size = strings.TrimSpace(size)
	p.Municipality = strings.TrimSpace(municipality)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPhotos replaces the pet's photo URLs
func (p *Pet) SetPhotos(urls []string) error {
	if len(urls) > 10 {
		return shared.NewDomainError("TOO_MANY_PHOTOS", "A pet can have at most 10 photos")
	}
	for _, u := range urls {
		if len(u) > 500 {
			return shared.NewDomainError("INVALID_PHOTO", "Photo URL cannot exceed 500 characters")
		}
	}

	p.PhotoURLs = urls
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// TransitionTo moves the pet to the target status if the transition is legal
func (p *Pet) TransitionTo(target PetStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown pet status: "+string(target))
	}
	if !p.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition pet from "+string(p.Status)+" to "+string(target))
	}

	p.Status = target
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsAvailable returns true if the pet can receive adoption applications
func (p *Pet) IsAvailable() bool {
	return p.Status == PetStatusAvailable
}
