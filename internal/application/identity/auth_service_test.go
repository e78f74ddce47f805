package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/auth"
	"github.com/pawlig/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

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

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]*partner.Vendor, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partner.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

var _ partner.VendorRepository = (*MockVendorRepository)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		RefreshSecret:          "test-refresh-secret-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "pawlig-test",
	})
}

func newTestAuthService(userRepo *MockUserRepository, shelterRepo *MockShelterRepository, vendorRepo *MockVendorRepository) (*AuthService, *auth.InMemoryTokenBlacklist) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := NewAuthService(userRepo, shelterRepo, vendorRepo, newTestJWTService(), blacklist, zap.NewNop())
	return service, blacklist
}

func createTestUser(role identity.Role) *identity.User {
	user, _ := identity.NewUser("ana@example.com", "Sup3rSecret!", "Ana Torres", role, "Medellín")
	return user
}

// =============================================================================
// AuthService Tests
// =============================================================================

func TestAuthService_Register_Adopter(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	vendorRepo := new(MockVendorRepository)
	service, _ := newTestAuthService(userRepo, shelterRepo, vendorRepo)

	ctx := context.Background()
	req := RegisterRequest{
		Email:        "ana@example.com",
		Password:     "Sup3rSecret!",
		Name:         "Ana Torres",
		Role:         "ADOPTER",
		Municipality: "Medellín",
	}

	userRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.Register(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Equal(t, "ADOPTER", result.User.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	userRepo.AssertExpectations(t)
	shelterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ShelterCreatesProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	shelterRepo := new(MockShelterRepository)
	vendorRepo := new(MockVendorRepository)
	service, _ := newTestAuthService(userRepo, shelterRepo, vendorRepo)

	ctx := context.Background()
	req := RegisterRequest{
		Email:            "refugio@example.com",
		Password:         "Sup3rSecret!",
		Name:             "Laura Gómez",
		Role:             "SHELTER",
		Municipality:     "Envigado",
		OrganizationName: "Refugio Patitas",
	}

	userRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	shelterRepo.On("Create", ctx, mock.MatchedBy(func(s *partner.Shelter) bool {
		return s.Name == "Refugio Patitas" && !s.Verified
	})).Return(nil)

	result, err := service.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "SHELTER", result.User.Role)
	userRepo.AssertExpectations(t)
	shelterRepo.AssertExpectations(t)
}

func TestAuthService_Register_ShelterRequiresOrganizationName(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	req := RegisterRequest{
		Email:        "refugio@example.com",
		Password:     "Sup3rSecret!",
		Name:         "Laura Gómez",
		Role:         "SHELTER",
		Municipality: "Envigado",
	}

	userRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)

	result, err := service.Register(ctx, req)

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestAuthService_Register_AdminRejected(t *testing.T) {
	service, _ := newTestAuthService(new(MockUserRepository), new(MockShelterRepository), new(MockVendorRepository))

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "root@example.com",
		Password: "Sup3rSecret!",
		Name:     "Root",
		Role:     "ADMIN",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	userRepo.On("ExistsByEmail", ctx, "ana@example.com").Return(true, nil)

	_, err := service.Register(ctx, RegisterRequest{
		Email:    "ana@example.com",
		Password: "Sup3rSecret!",
		Name:     "Ana Torres",
		Role:     "ADOPTER",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	user := createTestUser(identity.RoleAdopter)

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	result, err := service.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "Sup3rSecret!"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotNil(t, user.LastLoginAt)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	user := createTestUser(identity.RoleAdopter)
	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	_, err := service.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "wrong"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := service.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever1"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	// Same code as a wrong password so existence is not leaked
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	user := createTestUser(identity.RoleAdopter)
	require.NoError(t, user.Block())
	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	_, err := service.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "Sup3rSecret!"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_BLOCKED", domainErr.Code)
}

func TestAuthService_Refresh_RotatesAndRevokesOldToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	user := createTestUser(identity.RoleAdopter)

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	login, err := service.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "Sup3rSecret!"})
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The original refresh token is single-use
	_, err = service.Refresh(ctx, login.RefreshToken)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	service, _ := newTestAuthService(new(MockUserRepository), new(MockShelterRepository), new(MockVendorRepository))

	_, err := service.Refresh(context.Background(), "not-a-token")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}

func TestAuthService_ChangePassword_InvalidatesSessions(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, blacklist := newTestAuthService(userRepo, new(MockShelterRepository), new(MockVendorRepository))

	ctx := context.Background()
	user := createTestUser(identity.RoleAdopter)
	issuedAt := time.Now().Add(-time.Minute)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "Sup3rSecret!",
		NewPassword: "Ev3nMoreSecret!",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("Ev3nMoreSecret!"))

	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
}
