package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserAuditRepository is a mock implementation of identity.UserAuditRepository
type MockUserAuditRepository struct {
	mock.Mock
}

func (m *MockUserAuditRepository) Create(ctx context.Context, entry *identity.UserAudit) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUserAuditRepository) FindByTarget(ctx context.Context, targetID uuid.UUID, page shared.PageRequest) ([]*identity.UserAudit, int64, error) {
	args := m.Called(ctx, targetID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*identity.UserAudit), args.Get(1).(int64), args.Error(2)
}

var _ identity.UserAuditRepository = (*MockUserAuditRepository)(nil)

func newTestUserService(userRepo *MockUserRepository, auditRepo *MockUserAuditRepository) (*UserService, *auth.InMemoryTokenBlacklist) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := NewUserService(userRepo, auditRepo, blacklist, newTestJWTService(), zap.NewNop())
	return service, blacklist
}

func TestUserService_List_InvalidRole(t *testing.T) {
	service, _ := newTestUserService(new(MockUserRepository), new(MockUserAuditRepository))

	_, _, err := service.List(context.Background(), UserListFilter{Role: "WIZARD"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
}

func TestUserService_Block_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	auditRepo := new(MockUserAuditRepository)
	service, blacklist := newTestUserService(userRepo, auditRepo)

	ctx := context.Background()
	adminID := uuid.New()
	target := createTestUser(identity.RoleAdopter)
	issuedAt := time.Now().Add(-time.Minute)

	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Update", ctx, target).Return(nil)
	auditRepo.On("Create", ctx, mock.MatchedBy(func(e *identity.UserAudit) bool {
		return e.Action == identity.AuditActionBlock && e.AdminID == adminID && e.TargetID == target.ID
	})).Return(nil)

	result, err := service.Block(ctx, adminID, target.ID, "spam reports")

	require.NoError(t, err)
	assert.Equal(t, string(identity.UserStatusBlocked), result.Status)
	userRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)

	// Outstanding tokens issued before the block must be rejected
	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, target.ID.String(), issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
}

func TestUserService_Block_Self(t *testing.T) {
	service, _ := newTestUserService(new(MockUserRepository), new(MockUserAuditRepository))

	adminID := uuid.New()
	_, err := service.Block(context.Background(), adminID, adminID, "")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestUserService_Unblock_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	auditRepo := new(MockUserAuditRepository)
	service, _ := newTestUserService(userRepo, auditRepo)

	ctx := context.Background()
	adminID := uuid.New()
	target := createTestUser(identity.RoleAdopter)
	require.NoError(t, target.Block())

	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Update", ctx, target).Return(nil)
	auditRepo.On("Create", ctx, mock.MatchedBy(func(e *identity.UserAudit) bool {
		return e.Action == identity.AuditActionUnblock
	})).Return(nil)

	result, err := service.Unblock(ctx, adminID, target.ID, "appeal accepted")

	require.NoError(t, err)
	assert.Equal(t, string(identity.UserStatusActive), result.Status)
	auditRepo.AssertExpectations(t)
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	auditRepo := new(MockUserAuditRepository)
	service, blacklist := newTestUserService(userRepo, auditRepo)

	ctx := context.Background()
	adminID := uuid.New()
	target := createTestUser(identity.RoleAdopter)
	issuedAt := time.Now().Add(-time.Minute)

	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Update", ctx, target).Return(nil)
	auditRepo.On("Create", ctx, mock.MatchedBy(func(e *identity.UserAudit) bool {
		return e.Action == identity.AuditActionChangeRole
	})).Return(nil)

	result, err := service.ChangeRole(ctx, adminID, target.ID, ChangeRoleRequest{Role: "SHELTER"})

	require.NoError(t, err)
	assert.Equal(t, "SHELTER", result.Role)
	auditRepo.AssertExpectations(t)

	// Tokens carry the role, so existing sessions must be invalidated
	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, target.ID.String(), issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
}

func TestUserService_ChangeRole_Self(t *testing.T) {
	service, _ := newTestUserService(new(MockUserRepository), new(MockUserAuditRepository))

	adminID := uuid.New()
	_, err := service.ChangeRole(context.Background(), adminID, adminID, ChangeRoleRequest{Role: "ADOPTER"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestUserService_AuditTrail(t *testing.T) {
	userRepo := new(MockUserRepository)
	auditRepo := new(MockUserAuditRepository)
	service, _ := newTestUserService(userRepo, auditRepo)

	ctx := context.Background()
	targetID := uuid.New()
	entry, err := identity.NewUserAudit(uuid.New(), targetID, identity.AuditActionBlock, "spam")
	require.NoError(t, err)

	page := shared.PageRequest{Page: 1, PageSize: 20}
	auditRepo.On("FindByTarget", ctx, targetID, page).Return([]*identity.UserAudit{entry}, int64(1), nil)

	entries, total, err := service.AuditTrail(ctx, targetID, page)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "BLOCK", entries[0].Action)
}
