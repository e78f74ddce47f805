package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// ShelterService handles shelter profile operations
type ShelterService struct {
	shelterRepo partner.ShelterRepository
	logger      *zap.Logger
}

// NewShelterService creates a new ShelterService
func NewShelterService(shelterRepo partner.ShelterRepository, logger *zap.Logger) *ShelterService {
	return &ShelterService{
		shelterRepo: shelterRepo,
		logger:      logger,
	}
}

// GetByID retrieves a shelter by ID
func (s *ShelterService) GetByID(ctx context.Context, shelterID uuid.UUID) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByID(ctx, shelterID)
	if err != nil {
		return nil, err
	}

	response := ToShelterResponse(shelter)
	return &response, nil
}

// GetByOwner retrieves the shelter profile owned by a user
func (s *ShelterService) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	response := ToShelterResponse(shelter)
	return &response, nil
}

// List returns shelters matching the filter. Public callers see verified
// shelters only; the handler layer sets Verified for them.
func (s *ShelterService) List(ctx context.Context, filter ListFilter) ([]ShelterResponse, int64, error) {
	shelters, total, err := s.shelterRepo.FindAll(ctx, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	return ToShelterResponses(shelters), total, nil
}

// UpdateOwn updates the shelter profile owned by the caller
func (s *ShelterService) UpdateOwn(ctx context.Context, ownerID uuid.UUID, req UpdateProfileRequest) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := shelter.Update(req.Name, req.Description, req.Municipality, req.Address, req.Phone); err != nil {
		return nil, err
	}

	if err := s.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	response := ToShelterResponse(shelter)
	return &response, nil
}

// SetLogo stores the logo URL on the caller's shelter profile
func (s *ShelterService) SetLogo(ctx context.Context, ownerID uuid.UUID, logoURL string) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := shelter.SetLogo(logoURL); err != nil {
		return nil, err
	}

	if err := s.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	response := ToShelterResponse(shelter)
	return &response, nil
}

// Verify marks a shelter as verified. Admin only.
func (s *ShelterService) Verify(ctx context.Context, shelterID uuid.UUID) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByID(ctx, shelterID)
	if err != nil {
		return nil, err
	}

	if err := shelter.Verify(); err != nil {
		return nil, err
	}

	if err := s.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	s.logger.Info("Shelter verified", zap.String("shelter_id", shelterID.String()))

	response := ToShelterResponse(shelter)
	return &response, nil
}

// Unverify revokes a shelter's verification. Its pets drop out of public
// discovery immediately.
func (s *ShelterService) Unverify(ctx context.Context, shelterID uuid.UUID) (*ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByID(ctx, shelterID)
	if err != nil {
		return nil, err
	}

	if err := shelter.Unverify(); err != nil {
		return nil, err
	}

	if err := s.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	s.logger.Info("Shelter verification revoked", zap.String("shelter_id", shelterID.String()))

	response := ToShelterResponse(shelter)
	return &response, nil
}
