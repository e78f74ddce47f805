package adoption

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// autoRejectReason is recorded on sibling applications that lose out when
// another application for the same pet is approved.
const autoRejectReason = "Another application for this pet was approved"

// Service handles the adoption application lifecycle
type Service struct {
	adoptionRepo adoption.Repository
	petRepo      catalog.PetRepository
	shelterRepo  partner.ShelterRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewService creates a new adoption Service
func NewService(
	adoptionRepo adoption.Repository,
	petRepo catalog.PetRepository,
	shelterRepo partner.ShelterRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *Service {
	return &Service{
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
		shelterRepo:  shelterRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Apply creates a pending application for an AVAILABLE pet. At most one
// non-rejected application may exist per (adopter, pet) pair.
func (s *Service) Apply(ctx context.Context, adopterID uuid.UUID, req ApplyRequest) (*ApplicationResponse, error) {
	pet, err := s.petRepo.FindByID(ctx, req.PetID)
	if err != nil {
		return nil, err
	}

	if !pet.IsAvailable() {
		return nil, shared.NewDomainError("PET_NOT_AVAILABLE", "This pet is not available for adoption")
	}

	shelter, err := s.shelterRepo.FindByID(ctx, pet.ShelterID)
	if err != nil {
		return nil, err
	}
	if !shelter.Verified {
		return nil, shared.NewDomainError("PET_NOT_AVAILABLE", "This pet is not available for adoption")
	}

	exists, err := s.adoptionRepo.ExistsOpenForPair(ctx, adopterID, req.PetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "You already have an open application for this pet")
	}

	app, err := adoption.NewAdoption(adopterID, req.PetID, pet.ShelterID, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.adoptionRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("Adoption application created",
		zap.String("application_id", app.ID.String()),
		zap.String("pet_id", req.PetID.String()))

	response := ToApplicationResponse(app, time.Now())
	return &response, nil
}

// ListOwn returns the caller's applications, newest first
func (s *Service) ListOwn(ctx context.Context, adopterID uuid.UUID, filter ListFilter) ([]ApplicationResponse, int64, error) {
	domainFilter, err := toDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.AdopterID = &adopterID

	apps, total, err := s.adoptionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToApplicationResponses(apps, time.Now()), total, nil
}

// ListQueue returns the application queue of the caller's shelter
func (s *Service) ListQueue(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]ApplicationResponse, int64, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	domainFilter, err := toDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.ShelterID = &shelter.ID

	apps, total, err := s.adoptionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToApplicationResponses(apps, time.Now()), total, nil
}

// GetByID retrieves an application visible to the caller: the adopter who
// filed it or the owner of the shelter it targets.
func (s *Service) GetByID(ctx context.Context, callerID, applicationID uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.adoptionRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.AdopterID != callerID {
		shelter, err := s.shelterRepo.FindByID(ctx, app.ShelterID)
		if err != nil {
			return nil, err
		}
		if shelter.OwnerID != callerID {
			return nil, shared.ErrForbidden
		}
	}

	response := ToApplicationResponse(app, time.Now())
	return &response, nil
}

// Approve approves an application. In the same transaction the pet moves to
// IN_PROCESS and every other pending application for it is auto-rejected.
func (s *Service) Approve(ctx context.Context, ownerID, applicationID uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.ownedApplication(ctx, ownerID, applicationID)
	if err != nil {
		return nil, err
	}

	var approved *adoption.Adoption
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		pet, err := repos.PetRepo().FindByID(ctx, app.PetID)
		if err != nil {
			return err
		}

		if err := app.Approve(); err != nil {
			return err
		}
		if err := repos.AdoptionRepo().Update(ctx, app); err != nil {
			return err
		}

		if err := pet.TransitionTo(catalog.PetStatusInProcess); err != nil {
			return err
		}
		if err := repos.PetRepo().Update(ctx, pet); err != nil {
			return err
		}

		siblings, err := repos.AdoptionRepo().FindPendingByPet(ctx, app.PetID)
		if err != nil {
			return err
		}
		for _, sibling := range siblings {
			if sibling.ID == app.ID {
				continue
			}
			if err := sibling.Reject(autoRejectReason); err != nil {
				return err
			}
			if err := repos.AdoptionRepo().Update(ctx, sibling); err != nil {
				return err
			}
		}

		approved = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Adoption approved",
		zap.String("application_id", applicationID.String()),
		zap.String("pet_id", app.PetID.String()))

	response := ToApplicationResponse(approved, time.Now())
	return &response, nil
}

// Reject rejects an application with a reason surfaced to the adopter
func (s *Service) Reject(ctx context.Context, ownerID, applicationID uuid.UUID, reason string) (*ApplicationResponse, error) {
	app, err := s.ownedApplication(ctx, ownerID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := app.Reject(reason); err != nil {
		return nil, err
	}

	if err := s.adoptionRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("Adoption rejected",
		zap.String("application_id", applicationID.String()))

	response := ToApplicationResponse(app, time.Now())
	return &response, nil
}

// ownedApplication loads an application and verifies the caller owns the
// shelter it targets
func (s *Service) ownedApplication(ctx context.Context, ownerID, applicationID uuid.UUID) (*adoption.Adoption, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	app, err := s.adoptionRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.ShelterID != shelter.ID {
		return nil, shared.ErrForbidden
	}

	return app, nil
}

func toDomainFilter(f ListFilter) (adoption.Filter, error) {
	filter := adoption.Filter{}
	filter.Page = f.Page
	filter.PageSize = f.PageSize
	filter.Normalize()

	if f.Status != "" {
		status := adoption.Status(f.Status)
		if !status.IsValid() {
			return filter, shared.NewDomainError("INVALID_STATUS", "Unknown application status: "+f.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}
