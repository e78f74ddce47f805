package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// UserService handles admin user moderation. Every state change writes an
// audit entry recording the acting admin.
type UserService struct {
	userRepo   identity.UserRepository
	auditRepo  identity.UserAuditRepository
	blacklist  auth.TokenBlacklist
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewUserService creates a new user moderation service
func NewUserService(
	userRepo identity.UserRepository,
	auditRepo identity.UserAuditRepository,
	blacklist auth.TokenBlacklist,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		blacklist:  blacklist,
		jwtService: jwtService,
		logger:     logger,
	}
}

// List returns users matching the filter with pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := identity.UserFilter{
		PageRequest: shared.PageRequest{
			Page:     filter.Page,
			PageSize: filter.PageSize,
		},
		Search:       filter.Search,
		Municipality: filter.Municipality,
	}
	domainFilter.Normalize()

	if filter.Role != "" {
		role := identity.Role(filter.Role)
		if !role.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+filter.Role)
		}
		domainFilter.Role = &role
	}
	if filter.Status != "" {
		status := identity.UserStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown status: "+filter.Status)
		}
		domainFilter.Status = &status
	}

	users, total, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Block blocks a user and force-invalidates all their sessions
func (s *UserService) Block(ctx context.Context, adminID, targetID uuid.UUID, detail string) (*UserResponse, error) {
	if adminID == targetID {
		return nil, shared.NewDomainError("FORBIDDEN", "Admins cannot block themselves")
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := user.Block(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.recordAudit(ctx, adminID, targetID, identity.AuditActionBlock, detail); err != nil {
		return nil, err
	}

	// Blocked users must not keep valid sessions
	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, targetID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate sessions of blocked user",
			zap.String("user_id", targetID.String()), zap.Error(err))
	}

	s.logger.Info("User blocked",
		zap.String("admin_id", adminID.String()),
		zap.String("user_id", targetID.String()))

	response := ToUserResponse(user)
	return &response, nil
}

// Unblock reinstates a blocked user
func (s *UserService) Unblock(ctx context.Context, adminID, targetID uuid.UUID, detail string) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := user.Unblock(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.recordAudit(ctx, adminID, targetID, identity.AuditActionUnblock, detail); err != nil {
		return nil, err
	}

	s.logger.Info("User unblocked",
		zap.String("admin_id", adminID.String()),
		zap.String("user_id", targetID.String()))

	response := ToUserResponse(user)
	return &response, nil
}

// ChangeRole changes a user's role. Existing sessions are invalidated so the
// old role claim cannot be replayed.
func (s *UserService) ChangeRole(ctx context.Context, adminID, targetID uuid.UUID, req ChangeRoleRequest) (*UserResponse, error) {
	if adminID == targetID {
		return nil, shared.NewDomainError("FORBIDDEN", "Admins cannot change their own role")
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeRole(identity.Role(req.Role)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	detail := "role changed to " + req.Role
	if req.Detail != "" {
		detail = detail + ": " + req.Detail
	}
	if err := s.recordAudit(ctx, adminID, targetID, identity.AuditActionChangeRole, detail); err != nil {
		return nil, err
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, targetID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate sessions after role change",
			zap.String("user_id", targetID.String()), zap.Error(err))
	}

	s.logger.Info("User role changed",
		zap.String("admin_id", adminID.String()),
		zap.String("user_id", targetID.String()),
		zap.String("new_role", req.Role))

	response := ToUserResponse(user)
	return &response, nil
}

// AuditTrail returns the audit entries for a target user, newest first
func (s *UserService) AuditTrail(ctx context.Context, targetID uuid.UUID, page shared.PageRequest) ([]AuditEntryResponse, int64, error) {
	page.Normalize()

	entries, total, err := s.auditRepo.FindByTarget(ctx, targetID, page)
	if err != nil {
		return nil, 0, err
	}

	return ToAuditEntryResponses(entries), total, nil
}

func (s *UserService) recordAudit(ctx context.Context, adminID, targetID uuid.UUID, action identity.AuditAction, detail string) error {
	entry, err := identity.NewUserAudit(adminID, targetID, action, detail)
	if err != nil {
		return err
	}
	return s.auditRepo.Create(ctx, entry)
}
