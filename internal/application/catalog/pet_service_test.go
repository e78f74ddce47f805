package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockPetRepository is a mock implementation of catalog.PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet *catalog.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) Update(ctx context.Context, pet *catalog.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Pet), args.Error(1)
}

func (m *MockPetRepository) FindAll(ctx context.Context, filter catalog.PetFilter) ([]*catalog.Pet, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Pet), args.Get(1).(int64), args.Error(2)
}

var _ catalog.PetRepository = (*MockPetRepository)(nil)

// MockShelterRepository is a mock implementation of partner.ShelterRepository
type MockShelterRepository struct {
	mock.Mock
}

func (m *MockShelterRepository) Create(ctx context.Context, shelter *partner.Shelter) error {
	args := m.Called(ctx, shelter)
	return args.Error(0)
}

func (m *MockShelterRepository) Update(ctx context.Context, shelter *partner.Shelter) error {
	args := m.Called(ctx, shelter)
	return args.Error(0)
}

func (m *MockShelterRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Shelter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Shelter), args.Error(1)
}

func (m *MockShelterRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*partner.Shelter, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Shelter), args.Error(1)
}

func (m *MockShelterRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]*partner.Shelter, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partner.Shelter), args.Get(1).(int64), args.Error(2)
}

func (m *MockShelterRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

var _ partner.ShelterRepository = (*MockShelterRepository)(nil)

// MockFavoriteRepository is a mock implementation of adoption.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, fav *adoption.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, petID uuid.UUID) error {
	args := m.Called(ctx, userID, petID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, petID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, petID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FindPetIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID, page shared.PageRequest) ([]*adoption.Favorite, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*adoption.Favorite), args.Get(1).(int64), args.Error(2)
}

var _ adoption.FavoriteRepository = (*MockFavoriteRepository)(nil)

// MockAdoptionRepository is a mock implementation of adoption.Repository
type MockAdoptionRepository struct {
	mock.Mock
}

func (m *MockAdoptionRepository) Create(ctx context.Context, app *adoption.Adoption) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAdoptionRepository) Update(ctx context.Context, app *adoption.Adoption) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAdoptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*adoption.Adoption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adoption.Adoption), args.Error(1)
}

func (m *MockAdoptionRepository) FindAll(ctx context.Context, filter adoption.Filter) ([]*adoption.Adoption, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*adoption.Adoption), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdoptionRepository) ExistsOpenForPair(ctx context.Context, adopterID, petID uuid.UUID) (bool, error) {
	args := m.Called(ctx, adopterID, petID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdoptionRepository) FindPendingByPet(ctx context.Context, petID uuid.UUID) ([]*adoption.Adoption, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*adoption.Adoption), args.Error(1)
}

var _ adoption.Repository = (*MockAdoptionRepository)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func createTestShelter(ownerID uuid.UUID) *partner.Shelter {
	shelter, _ := partner.NewShelter(ownerID, "Refugio Patitas", "Medellín")
	_ = shelter.Verify()
	return shelter
}

func createTestPet(shelterID uuid.UUID) *catalog.Pet {
	pet, _ := catalog.NewPet(shelterID, "Rocky", "dog", catalog.PetSexMale, 18, "Medellín")
	return pet
}

func newTestPetService(petRepo *MockPetRepository, shelterRepo *MockShelterRepository, favoriteRepo *MockFavoriteRepository, adoptionRepo *MockAdoptionRepository) *PetService {
	return NewPetService(petRepo, shelterRepo, favoriteRepo, adoptionRepo, zap.NewNop())
}

// =============================================================================
// PetService Tests
// =============================================================================

func TestPetService_ListPublic_ForcesVerifiedAndAvailable(t *testing.T) {
	petRepo := new(MockPetRepository)
	service := newTestPetService(petRepo, new(MockShelterRepository), new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	pet := createTestPet(uuid.New())

	petRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.PetFilter) bool {
		return f.VerifiedSheltersOnly && f.Status != nil && *f.Status == catalog.PetStatusAvailable
	})).Return([]*catalog.Pet{pet}, int64(1), nil)

	results, total, err := service.ListPublic(ctx, PetListFilter{}, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.False(t, results[0].Favorited)
	petRepo.AssertExpectations(t)
}

func TestPetService_ListPublic_AllFiltersForwarded(t *testing.T) {
	petRepo := new(MockPetRepository)
	service := newTestPetService(petRepo, new(MockShelterRepository), new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	minAge, maxAge := 6, 24

	petRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.PetFilter) bool {
		return f.Search == "rocky" &&
			f.Species == "dog" &&
			f.Municipality == "Medellín" &&
			f.Sex != nil && *f.Sex == catalog.PetSexMale &&
			f.MinAgeMonths != nil && *f.MinAgeMonths == 6 &&
			f.MaxAgeMonths != nil && *f.MaxAgeMonths == 24
	})).Return([]*catalog.Pet{}, int64(0), nil)

	_, _, err := service.ListPublic(ctx, PetListFilter{
		Search:       "rocky",
		Species:      "dog",
		Municipality: "Medellín",
		Sex:          "MALE",
		MinAgeMonths: &minAge,
		MaxAgeMonths: &maxAge,
	}, nil)

	require.NoError(t, err)
	petRepo.AssertExpectations(t)
}

func TestPetService_ListPublic_FillsFavoritedForViewer(t *testing.T) {
	petRepo := new(MockPetRepository)
	favoriteRepo := new(MockFavoriteRepository)
	service := newTestPetService(petRepo, new(MockShelterRepository), favoriteRepo, new(MockAdoptionRepository))

	ctx := context.Background()
	viewerID := uuid.New()
	favorited := createTestPet(uuid.New())
	other := createTestPet(uuid.New())

	petRepo.On("FindAll", ctx, mock.AnythingOfType("catalog.PetFilter")).
		Return([]*catalog.Pet{favorited, other}, int64(2), nil)
	favoriteRepo.On("FindPetIDsByUser", ctx, viewerID).Return([]uuid.UUID{favorited.ID}, nil)

	results, _, err := service.ListPublic(ctx, PetListFilter{}, &viewerID)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Favorited)
	assert.False(t, results[1].Favorited)
}

func TestPetService_ListPublic_IgnoresCallerStatusFilter(t *testing.T) {
	petRepo := new(MockPetRepository)
	service := newTestPetService(petRepo, new(MockShelterRepository), new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()

	petRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.PetFilter) bool {
		return f.Status != nil && *f.Status == catalog.PetStatusAvailable
	})).Return([]*catalog.Pet{}, int64(0), nil)

	_, _, err := service.ListPublic(ctx, PetListFilter{Status: "ADOPTED"}, nil)

	require.NoError(t, err)
	petRepo.AssertExpectations(t)
}

func TestPetService_GetByID_HidesNonAvailableFromPublic(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	shelter := createTestShelter(uuid.New())
	pet := createTestPet(shelter.ID)
	require.NoError(t, pet.TransitionTo(catalog.PetStatusInProcess))
	require.NoError(t, pet.TransitionTo(catalog.PetStatusAdopted))

	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	shelterRepo.On("FindByID", ctx, shelter.ID).Return(shelter, nil)

	_, err := service.GetByID(ctx, pet.ID, nil)
	require.ErrorIs(t, err, shared.ErrNotFound)

	stranger := &Viewer{UserID: uuid.New(), Role: identity.RoleAdopter}
	_, err = service.GetByID(ctx, pet.ID, stranger)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPetService_GetByID_HidesUnverifiedShelterPetFromPublic(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	shelter, err := partner.NewShelter(uuid.New(), "Refugio Patitas", "Medellín")
	require.NoError(t, err)
	pet := createTestPet(shelter.ID) // AVAILABLE, but the shelter is unverified

	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	shelterRepo.On("FindByID", ctx, shelter.ID).Return(shelter, nil)

	_, err = service.GetByID(ctx, pet.ID, nil)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPetService_GetByID_OwnerAndAdminSeeHiddenPet(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	favoriteRepo := new(MockFavoriteRepository)
	service := newTestPetService(petRepo, shelterRepo, favoriteRepo, new(MockAdoptionRepository))

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)
	pet := createTestPet(shelter.ID)
	require.NoError(t, pet.TransitionTo(catalog.PetStatusInProcess))

	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	shelterRepo.On("FindByID", ctx, shelter.ID).Return(shelter, nil)
	favoriteRepo.On("Exists", ctx, mock.AnythingOfType("uuid.UUID"), pet.ID).Return(false, nil)

	owner := &Viewer{UserID: ownerID, Role: identity.RoleShelter}
	result, err := service.GetByID(ctx, pet.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, string(catalog.PetStatusInProcess), result.Status)

	admin := &Viewer{UserID: uuid.New(), Role: identity.RoleAdmin}
	result, err = service.GetByID(ctx, pet.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, string(catalog.PetStatusInProcess), result.Status)
}

func TestPetService_GetByID_PublicPetFillsFavorited(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	favoriteRepo := new(MockFavoriteRepository)
	service := newTestPetService(petRepo, shelterRepo, favoriteRepo, new(MockAdoptionRepository))

	ctx := context.Background()
	shelter := createTestShelter(uuid.New())
	pet := createTestPet(shelter.ID)
	adopterID := uuid.New()

	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	shelterRepo.On("FindByID", ctx, shelter.ID).Return(shelter, nil)
	favoriteRepo.On("Exists", ctx, adopterID, pet.ID).Return(true, nil)

	result, err := service.GetByID(ctx, pet.ID, &Viewer{UserID: adopterID, Role: identity.RoleAdopter})

	require.NoError(t, err)
	assert.True(t, result.Favorited)
}

func TestPetService_Create_DefaultsMunicipalityFromShelter(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)

	shelterRepo.On("FindByOwner", ctx, ownerID).Return(shelter, nil)
	petRepo.On("Create", ctx, mock.MatchedBy(func(p *catalog.Pet) bool {
		return p.Municipality == shelter.Municipality && p.ShelterID == shelter.ID
	})).Return(nil)

	result, err := service.Create(ctx, ownerID, CreatePetRequest{
		Name:      "Rocky",
		Species:   "Dog",
		Sex:       "MALE",
		AgeMonths: 18,
	})

	require.NoError(t, err)
	assert.Equal(t, "Medellín", result.Municipality)
	assert.Equal(t, string(catalog.PetStatusAvailable), result.Status)
	petRepo.AssertExpectations(t)
}

func TestPetService_Update_NotOwnedForbidden(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)
	pet := createTestPet(uuid.New()) // belongs to a different shelter

	shelterRepo.On("FindByOwner", ctx, ownerID).Return(shelter, nil)
	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)

	_, err := service.Update(ctx, ownerID, pet.ID, UpdatePetRequest{
		Name: "Rocky", Species: "dog", Sex: "MALE",
	})

	require.ErrorIs(t, err, shared.ErrForbidden)
	petRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPetService_Delete_BlockedByPendingApplications(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	adoptionRepo := new(MockAdoptionRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), adoptionRepo)

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)
	pet := createTestPet(shelter.ID)
	app, err := adoption.NewAdoption(uuid.New(), pet.ID, shelter.ID, "I love Rocky")
	require.NoError(t, err)

	shelterRepo.On("FindByOwner", ctx, ownerID).Return(shelter, nil)
	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	adoptionRepo.On("FindPendingByPet", ctx, pet.ID).Return([]*adoption.Adoption{app}, nil)

	err = service.Delete(ctx, ownerID, pet.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	petRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPetService_MarkAdopted_RequiresInProcess(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)
	pet := createTestPet(shelter.ID) // still AVAILABLE

	shelterRepo.On("FindByOwner", ctx, ownerID).Return(shelter, nil)
	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)

	_, err := service.MarkAdopted(ctx, ownerID, pet.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestPetService_Relist_FromInProcess(t *testing.T) {
	petRepo := new(MockPetRepository)
	shelterRepo := new(MockShelterRepository)
	service := newTestPetService(petRepo, shelterRepo, new(MockFavoriteRepository), new(MockAdoptionRepository))

	ctx := context.Background()
	ownerID := uuid.New()
	shelter := createTestShelter(ownerID)
	pet := createTestPet(shelter.ID)
	require.NoError(t, pet.TransitionTo(catalog.PetStatusInProcess))

	shelterRepo.On("FindByOwner", ctx, ownerID).Return(shelter, nil)
	petRepo.On("FindByID", ctx, pet.ID).Return(pet, nil)
	petRepo.On("Update", ctx, pet).Return(nil)

	result, err := service.Relist(ctx, ownerID, pet.ID)

	require.NoError(t, err)
	assert.Equal(t, string(catalog.PetStatusAvailable), result.Status)
	petRepo.AssertExpectations(t)
}
