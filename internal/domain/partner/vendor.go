package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// Vendor represents a product vendor profile. Each vendor is owned by exactly
// one VENDOR user. The Verified flag gates visibility of its products.
type Vendor struct {
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

// NewVendor creates a new unverified vendor profile
func NewVendor(ownerID uuid.UUID, name, municipality string) (*Vendor, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validateOrgName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(municipality) == "" {
		return nil, shared.NewDomainError("INVALID_MUNICIPALITY", "Municipality cannot be empty")
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		Name:              strings.TrimSpace(name),
		Municipality:      strings.TrimSpace(municipality),
		Verified:          false,
	}, nil
}

// Update updates the vendor's editable profile fields
func (v *Vendor) Update(name, description, municipality, address, phone string) error {
	if err := validateOrgName(name); err != nil {
		return err
	}
	if strings.TrimSpace(municipality) == "" {
		return shared.NewDomainError("INVALID_MUNICIPALITY", "Municipality cannot be empty")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	v.Name = strings.TrimSpace(name)
	v.Description = description
	v.Municipality = strings.TrimSpace(municipality)
	v.Address = strings.TrimSpace(address)
	v.Phone = strings.TrimSpace(phone)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetLogo sets the vendor's logo URL
func (v *Vendor) SetLogo(logoURL string) error {
	if logoURL != "" && len(logoURL) > 500 {
		return shared.NewDomainError("INVALID_LOGO", "Logo URL cannot exceed 500 characters")
	}

	v.LogoURL = logoURL
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Verify marks the vendor as verified by an administrator
func (v *Vendor) Verify() error {
	if v.Verified {
		return shared.NewDomainError("ALREADY_VERIFIED", "Vendor is already verified")
	}

	now := time.Now()
	v.Verified = true
	v.VerifiedAt = &now
	v.UpdatedAt = now
	v.IncrementVersion()

	return nil
}

// Unverify revokes the vendor's verification
func (v *Vendor) Unverify() error {
	if !v.Verified {
		return shared.NewDomainError("NOT_VERIFIED", "Vendor is not verified")
	}

	v.Verified = false
	v.VerifiedAt = nil
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}
