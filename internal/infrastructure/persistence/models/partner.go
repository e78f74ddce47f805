package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
)

// ShelterModel is the persistence model for the Shelter domain entity.
type ShelterModel struct {
	AggregateModel
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shelters_owner"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	Municipality string    `gorm:"type:varchar(100);index"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(50)"`
	LogoURL      string    `gorm:"type:text"`
	Verified     bool      `gorm:"not null;default:false;index"`
	VerifiedAt   *time.Time
}

// TableName returns the table name for GORM
func (ShelterModel) TableName() string {
	return "shelters"
}

// ToDomain converts the persistence model to a domain Shelter entity.
func (m *ShelterModel) ToDomain() *partner.Shelter {
	return &partner.Shelter{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		Description:       m.Description,
		Municipality:      m.Municipality,
		Address:           m.Address,
		Phone:             m.Phone,
		LogoURL:           m.LogoURL,
		Verified:          m.Verified,
		VerifiedAt:        m.VerifiedAt,
	}
}

// FromDomain populates the persistence model from a domain Shelter entity.
func (m *ShelterModel) FromDomain(s *partner.Shelter) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.OwnerID = s.OwnerID
	m.Name = s.Name
	m.Description = s.Description
	m.Municipality = s.Municipality
	m.Address = s.Address
	m.Phone = s.Phone
	m.LogoURL = s.LogoURL
	m.Verified = s.Verified
	m.VerifiedAt = s.VerifiedAt
}

// ShelterModelFromDomain creates a new persistence model from a domain Shelter entity.
func ShelterModelFromDomain(s *partner.Shelter) *ShelterModel {
	m := &ShelterModel{}
	m.FromDomain(s)
	return m
}

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	AggregateModel
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vendors_owner"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	Municipality string    `gorm:"type:varchar(100);index"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(50)"`
	LogoURL      string    `gorm:"type:text"`
	Verified     bool      `gorm:"not null;default:false;index"`
	VerifiedAt   *time.Time
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *partner.Vendor {
	return &partner.Vendor{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		Description:       m.Description,
		Municipality:      m.Municipality,
		Address:           m.Address,
		Phone:             m.Phone,
		LogoURL:           m.LogoURL,
		Verified:          m.Verified,
		VerifiedAt:        m.VerifiedAt,
	}
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *partner.Vendor) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.OwnerID = v.OwnerID
	m.Name = v.Name
	m.Description = v.Description
	m.Municipality = v.Municipality
	m.Address = v.Address
	m.Phone = v.Phone
	m.LogoURL = v.LogoURL
	m.Verified = v.Verified
	m.VerifiedAt = v.VerifiedAt
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *partner.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}
