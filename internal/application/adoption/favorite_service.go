package adoption

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// FavoriteService handles favorite toggling and listing
type FavoriteService struct {
	favoriteRepo adoption.FavoriteRepository
	petRepo      catalog.PetRepository
	logger       *zap.Logger
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	favoriteRepo adoption.FavoriteRepository,
	petRepo catalog.PetRepository,
	logger *zap.Logger,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		petRepo:      petRepo,
		logger:       logger,
	}
}

// Toggle flips the favorite state for a pet and returns the new state
func (s *FavoriteService) Toggle(ctx context.Context, userID, petID uuid.UUID) (*ToggleResponse, error) {
	// The pet must exist; favoriting adopted pets is allowed
	if _, err := s.petRepo.FindByID(ctx, petID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, petID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := s.favoriteRepo.Delete(ctx, userID, petID); err != nil {
			return nil, err
		}
		return &ToggleResponse{PetID: petID, Favorited: false}, nil
	}

	fav, err := adoption.NewFavorite(userID, petID)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		return nil, err
	}

	return &ToggleResponse{PetID: petID, Favorited: true}, nil
}

// ListIDs returns the caller's full favorited pet ID set. Clients use it
// to mark favorites on catalog views without paging through /favorites.
func (s *FavoriteService) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.favoriteRepo.FindPetIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// List returns the caller's favorites with pet summaries, newest first
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID, page shared.PageRequest) ([]FavoriteResponse, int64, error) {
	page.Normalize()

	favorites, total, err := s.favoriteRepo.FindByUser(ctx, userID, page)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FavoriteResponse, len(favorites))
	for i, fav := range favorites {
		pet, err := s.petRepo.FindByID(ctx, fav.PetID)
		if err != nil {
			// The pet may have been deleted; keep the favorite row visible
			pet = nil
		}
		responses[i] = ToFavoriteResponse(fav, pet)
	}

	return responses, total, nil
}
