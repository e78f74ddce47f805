package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PetService handles pet publishing and discovery
type PetService struct {
	petRepo      catalog.PetRepository
	shelterRepo  partner.ShelterRepository
	favoriteRepo adoption.FavoriteRepository
	adoptionRepo adoption.Repository
	logger       *zap.Logger
}

// NewPetService creates a new PetService
func NewPetService(
	petRepo catalog.PetRepository,
	shelterRepo partner.ShelterRepository,
	favoriteRepo adoption.FavoriteRepository,
	adoptionRepo adoption.Repository,
	logger *zap.Logger,
) *PetService {
	return &PetService{
		petRepo:      petRepo,
		shelterRepo:  shelterRepo,
		favoriteRepo: favoriteRepo,
		adoptionRepo: adoptionRepo,
		logger:       logger,
	}
}

// ListPublic returns pets for public discovery: AVAILABLE pets of verified
// shelters only. A status filter from the caller is ignored; shelters browse
// their non-available pets through ListOwn. viewerID, when non-nil, fills
// the Favorited flag.
func (s *PetService) ListPublic(ctx context.Context, filter PetListFilter, viewerID *uuid.UUID) ([]PetResponse, int64, error) {
	domainFilter, err := toPetDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.VerifiedSheltersOnly = true
	available := catalog.PetStatusAvailable
	domainFilter.Status = &available

	pets, total, err := s.petRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	favorites, err := s.favoriteSet(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}

	return ToPetResponses(pets, favorites), total, nil
}

// ListOwn returns all pets of the caller's shelter regardless of status
func (s *PetService) ListOwn(ctx context.Context, ownerID uuid.UUID, filter PetListFilter) ([]PetResponse, int64, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	domainFilter, err := toPetDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.ShelterID = &shelter.ID

	pets, total, err := s.petRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPetResponses(pets, nil), total, nil
}

// GetByID retrieves a pet by ID. Pets that are not publicly visible are
// answered with a not-found unless the viewer is the owning shelter or an
// admin. viewer, when non-nil, also fills Favorited.
func (s *PetService) GetByID(ctx context.Context, petID uuid.UUID, viewer *Viewer) (*PetResponse, error) {
	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	shelter, err := s.shelterRepo.FindByID(ctx, pet.ShelterID)
	if err != nil {
		return nil, err
	}

	if !visibleTo(pet, shelter, viewer) {
		return nil, shared.ErrNotFound
	}

	response := ToPetResponse(pet)
	if viewer != nil {
		favorited, err := s.favoriteRepo.Exists(ctx, viewer.UserID, petID)
		if err != nil {
			return nil, err
		}
		response.Favorited = favorited
	}

	return &response, nil
}

// visibleTo reports whether the viewer may see the pet. AVAILABLE pets of
// verified shelters are public; everything else is restricted to the owning
// shelter and admins.
func visibleTo(pet *catalog.Pet, shelter *partner.Shelter, viewer *Viewer) bool {
	if pet.Status == catalog.PetStatusAvailable && shelter.Verified {
		return true
	}
	if viewer == nil {
		return false
	}
	return viewer.Role == identity.RoleAdmin || viewer.UserID == shelter.OwnerID
}

// Create publishes a new pet under the caller's shelter
func (s *PetService) Create(ctx context.Context, ownerID uuid.UUID, req CreatePetRequest) (*PetResponse, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	municipality := req.Municipality
	if municipality == "" {
		municipality = shelter.Municipality
	}

	pet, err := catalog.NewPet(shelter.ID, req.Name, req.Species, catalog.PetSex(req.Sex), req.AgeMonths, municipality)
	if err != nil {
		return nil, err
	}

	if err := pet.Update(req.Name, req.Species, req.Breed, catalog.PetSex(req.Sex), req.AgeMonths, req.Size, municipality, req.Description); err != nil {
		return nil, err
	}
	if len(req.PhotoURLs) > 0 {
		if err := pet.SetPhotos(req.PhotoURLs); err != nil {
			return nil, err
		}
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	s.logger.Info("Pet published",
		zap.String("pet_id", pet.ID.String()),
		zap.String("shelter_id", shelter.ID.String()))

	response := ToPetResponse(pet)
	return &response, nil
}

// Update updates a pet owned by the caller's shelter
func (s *PetService) Update(ctx context.Context, ownerID, petID uuid.UUID, req UpdatePetRequest) (*PetResponse, error) {
	pet, err := s.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if err := pet.Update(req.Name, req.Species, req.Breed, catalog.PetSex(req.Sex), req.AgeMonths, req.Size, req.Municipality, req.Description); err != nil {
		return nil, err
	}
	if req.PhotoURLs != nil {
		if err := pet.SetPhotos(req.PhotoURLs); err != nil {
			return nil, err
		}
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	response := ToPetResponse(pet)
	return &response, nil
}

// Delete removes a pet listing. Pets with pending applications or an active
// hand-over cannot be deleted.
func (s *PetService) Delete(ctx context.Context, ownerID, petID uuid.UUID) error {
	pet, err := s.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return err
	}

	if pet.Status == catalog.PetStatusInProcess {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a pet with an adoption in process")
	}

	pending, err := s.adoptionRepo.FindPendingByPet(ctx, petID)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a pet with pending applications")
	}

	if err := s.petRepo.Delete(ctx, petID); err != nil {
		return err
	}

	s.logger.Info("Pet deleted", zap.String("pet_id", petID.String()))
	return nil
}

// MarkAdopted completes the hand-over of a pet whose adoption is in process
func (s *PetService) MarkAdopted(ctx context.Context, ownerID, petID uuid.UUID) (*PetResponse, error) {
	return s.transitionOwned(ctx, ownerID, petID, catalog.PetStatusAdopted)
}

// Relist returns an in-process pet to AVAILABLE when an adoption falls through
func (s *PetService) Relist(ctx context.Context, ownerID, petID uuid.UUID) (*PetResponse, error) {
	return s.transitionOwned(ctx, ownerID, petID, catalog.PetStatusAvailable)
}

func (s *PetService) transitionOwned(ctx context.Context, ownerID, petID uuid.UUID, target catalog.PetStatus) (*PetResponse, error) {
	pet, err := s.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if err := pet.TransitionTo(target); err != nil {
		return nil, err
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	s.logger.Info("Pet status changed",
		zap.String("pet_id", petID.String()),
		zap.String("status", string(target)))

	response := ToPetResponse(pet)
	return &response, nil
}

// ownedPet loads a pet and verifies it belongs to the caller's shelter
func (s *PetService) ownedPet(ctx context.Context, ownerID, petID uuid.UUID) (*catalog.Pet, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if pet.ShelterID != shelter.ID {
		return nil, shared.ErrForbidden
	}

	return pet, nil
}

func (s *PetService) favoriteSet(ctx context.Context, viewerID *uuid.UUID) (map[uuid.UUID]bool, error) {
	if viewerID == nil {
		return nil, nil
	}

	ids, err := s.favoriteRepo.FindPetIDsByUser(ctx, *viewerID)
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func toPetDomainFilter(f PetListFilter) (catalog.PetFilter, error) {
	filter := catalog.PetFilter{
		Search:       f.Search,
		Species:      f.Species,
		Municipality: f.Municipality,
		MinAgeMonths: f.MinAgeMonths,
		MaxAgeMonths: f.MaxAgeMonths,
	}
	filter.Page = f.Page
	filter.PageSize = f.PageSize
	filter.Normalize()

	if f.Sex != "" {
		sex := catalog.PetSex(f.Sex)
		if !sex.IsValid() {
			return filter, shared.NewDomainError("INVALID_SEX", "Sex must be MALE or FEMALE")
		}
		filter.Sex = &sex
	}
	if f.Status != "" {
		status := catalog.PetStatus(f.Status)
		if !status.IsValid() {
			return filter, shared.NewDomainError("INVALID_STATUS", "Unknown pet status: "+f.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}
