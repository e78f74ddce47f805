package adoption

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// Status represents the lifecycle status of an adoption application
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// APPROVED and REJECTED are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// IsTerminal returns true for decided applications
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// RecentWindow is how long after a decision an application is still flagged
// as recent for the adopter's notification badge.
const RecentWindow = 24 * time.Hour

const (
	maxMessageLength = 2000
	maxReasonLength  = 1000
)

// Adoption is an application linking an adopter to a pet. The owning shelter
// is denormalized so its queue can be listed without joining through pets.
// At most one non-rejected application may exist per (adopter, pet) pair.
type Adoption struct {
	shared.BaseAggregateRoot
	AdopterID       uuid.UUID
	PetID           uuid.UUID
	ShelterID       uuid.UUID
	Message         string
	Status          Status
	RejectionReason string
	DecidedAt       *time.Time
}

// NewAdoption creates a new pending application
func NewAdoption(adopterID, petID, shelterID uuid.UUID, message string) (*Adoption, error) {
	if adopterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADOPTER", "Adopter ID cannot be empty")
	}
	if petID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PET", "Pet ID cannot be empty")
	}
	if shelterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHELTER", "Shelter ID cannot be empty")
	}
	if len(message) > maxMessageLength {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot exceed 2000 characters")
	}

	return &Adoption{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AdopterID:         adopterID,
		PetID:             petID,
		ShelterID:         shelterID,
		Message:           strings.TrimSpace(message),
		Status:            StatusPending,
	}, nil
}

// Approve moves the application to APPROVED
func (a *Adoption) Approve() error {
	if a.Status.IsTerminal() {
		return shared.NewDomainError("ALREADY_DECIDED",
			"Application has already been "+strings.ToLower(string(a.Status)))
	}
	if !a.Status.CanTransitionTo(StatusApproved) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot approve an application in status "+string(a.Status))
	}

	now := time.Now()
	a.Status = StatusApproved
	a.DecidedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	return nil
}

// Reject moves the application to REJECTED. A non-empty reason is required;
// it is surfaced to the adopter.
func (a *Adoption) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("REASON_REQUIRED", "Rejection reason cannot be empty")
	}
	if len(reason) > maxReasonLength {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason cannot exceed 1000 characters")
	}
	if a.Status.IsTerminal() {
		return shared.NewDomainError("ALREADY_DECIDED",
			"Application has already been "+strings.ToLower(string(a.Status)))
	}
	if !a.Status.CanTransitionTo(StatusRejected) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot reject an application in status "+string(a.Status))
	}

	now := time.Now()
	a.Status = StatusRejected
	a.RejectionReason = strings.TrimSpace(reason)
	a.DecidedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	return nil
}

// IsRecent reports whether the application was decided within RecentWindow.
// Purely presentational; drives the adopter's notification badge.
func (a *Adoption) IsRecent(now time.Time) bool {
	if a.DecidedAt == nil {
		return false
	}
	return now.Sub(*a.DecidedAt) <= RecentWindow
}
