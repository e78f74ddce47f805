package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
)

// AdoptionModel is the persistence model for the Adoption domain entity.
type AdoptionModel struct {
	AggregateModel
	AdopterID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PetID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShelterID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Message         string          `gorm:"type:varchar(2000)"`
	Status          adoption.Status `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	RejectionReason string          `gorm:"type:varchar(1000)"`
	DecidedAt       *time.Time
}

// TableName returns the table name for GORM
func (AdoptionModel) TableName() string {
	return "adoptions"
}

// ToDomain converts the persistence model to a domain Adoption entity.
func (m *AdoptionModel) ToDomain() *adoption.Adoption {
	return &adoption.Adoption{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AdopterID:         m.AdopterID,
		PetID:             m.PetID,
		ShelterID:         m.ShelterID,
		Message:           m.Message,
		Status:            m.Status,
		RejectionReason:   m.RejectionReason,
		DecidedAt:         m.DecidedAt,
	}
}

// FromDomain populates the persistence model from a domain Adoption entity.
func (m *AdoptionModel) FromDomain(a *adoption.Adoption) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.AdopterID = a.AdopterID
	m.PetID = a.PetID
	m.ShelterID = a.ShelterID
	m.Message = a.Message
	m.Status = a.Status
	m.RejectionReason = a.RejectionReason
	m.DecidedAt = a.DecidedAt
}

// AdoptionModelFromDomain creates a new persistence model from a domain Adoption entity.
func AdoptionModelFromDomain(a *adoption.Adoption) *AdoptionModel {
	m := &AdoptionModel{}
	m.FromDomain(a)
	return m
}

// FavoriteModel is the persistence model for the Favorite marker.
// The (user_id, pet_id) pair is the primary key.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	PetID     uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ToDomain converts the persistence model to a domain Favorite.
func (m *FavoriteModel) ToDomain() *adoption.Favorite {
	return &adoption.Favorite{
		UserID:    m.UserID,
		PetID:     m.PetID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Favorite.
func (m *FavoriteModel) FromDomain(f *adoption.Favorite) {
	m.UserID = f.UserID
	m.PetID = f.PetID
	m.CreatedAt = f.CreatedAt
}

// FavoriteModelFromDomain creates a new persistence model from a domain Favorite.
func FavoriteModelFromDomain(f *adoption.Favorite) *FavoriteModel {
	m := &FavoriteModel{}
	m.FromDomain(f)
	return m
}
