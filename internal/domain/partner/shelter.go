package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// Shelter represents a shelter organization profile. Each shelter is owned by
// exactly one SHELTER user. The Verified flag gates visibility of its pets in
// public discovery.
type Shelter struct {
	shared.BaseAggregateRoot
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Municipality string
	Address      string
	Phone        string
	LogoURL      string
	Verified     bool
	VerifiedAt   *time.Time
}

// NewShelter creates a new unverified shelter profile
func NewShelter(ownerID uuid.UUID, name, municipality string) (*Shelter, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validateOrgName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(municipality) == "" {
		return nil, shared.NewDomainError("INVALID_MUNICIPALITY", "Municipality cannot be empty")
	}

	return &Shelter{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		Name:              strings.TrimSpace(name),
		Municipality:      strings.TrimSpace(municipality),
		Verified:          false,
	}, nil
}

// Update updates the shelter's editable profile fields
func (s *Shelter) Update(name, description, municipality, address, phone string) error {
	if err := validateOrgName(name); err != nil {
		return err
	}
	if strings.TrimSpace(municipality) == "" {
		return shared.NewDomainError("INVALID_MUNICIPALITY", "Municipality cannot be empty")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	s.Name = strings.TrimSpace(name)
	s.Description = description
	s.Municipality = strings.TrimSpace(municipality)
	s.Address = strings.TrimSpace(address)
	s.Phone = strings.TrimSpace(phone)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetLogo sets the shelter's logo URL
func (s *Shelter) SetLogo(logoURL string) error {
	if logoURL != "" && len(logoURL) > 500 {
		return shared.NewDomainError("INVALID_LOGO", "Logo URL cannot exceed 500 characters")
	}

	s.LogoURL = logoURL
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Verify marks the shelter as verified by an administrator
func (s *Shelter) Verify() error {
	if s.Verified {
		return shared.NewDomainError("ALREADY_VERIFIED", "Shelter is already verified")
	}

	now := time.Now()
	s.Verified = true
	s.VerifiedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	return nil
}

// Unverify revokes the shelter's verification
func (s *Shelter) Unverify() error {
	if !s.Verified {
		return shared.NewDomainError("NOT_VERIFIED", "Shelter is not verified")
	}

	s.Verified = false
	s.VerifiedAt = nil
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

func validateOrgName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
