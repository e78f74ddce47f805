package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
)

// RegisterRequest represents a request to register a new account
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email,max=200"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Role         string `json:"role" binding:"required,oneof=ADOPTER SHELTER VENDOR"`
	Municipality string `json:"municipality" binding:"max=100"`

	// Organization name, required when registering as SHELTER or VENDOR
	OrganizationName string `json:"organization_name" binding:"max=200"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Municipality string `json:"municipality" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ChangeRoleRequest represents an admin role change
type ChangeRoleRequest struct {
	Role   string `json:"role" binding:"required,oneof=ADMIN SHELTER VENDOR ADOPTER"`
	Detail string `json:"detail" binding:"max=500"`
}

// ModerateRequest carries the optional note for block/unblock actions
type ModerateRequest struct {
	Detail string `json:"detail" binding:"max=500"`
}

// UserListFilter contains list query parameters for the admin user list
type UserListFilter struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	Search       string `form:"search"`
	Role         string `form:"role"`
	Status       string `form:"status"`
	Municipality string `form:"municipality"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Municipality string     `json:"municipality"`
	Phone        string     `json:"phone"`
	Avatar       string     `json:"avatar"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	User                 UserResponse `json:"user"`
	AccessToken          string       `json:"access_token"`
	RefreshToken         string       `json:"refresh_token"`
	AccessTokenExpiresAt time.Time    `json:"access_token_expires_at"`
	TokenType            string       `json:"token_type"`
}

// AuditEntryResponse represents an audit log entry in API responses
type AuditEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	AdminID   uuid.UUID `json:"admin_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role.String(),
		Municipality: u.Municipality,
		Phone:        u.Phone,
		Avatar:       u.Avatar,
		Status:       string(u.Status),
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []*identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(u)
	}
	return responses
}

// ToAuditEntryResponse converts a domain audit entry to a response DTO
func ToAuditEntryResponse(e *identity.UserAudit) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		AdminID:   e.AdminID,
		TargetID:  e.TargetID,
		Action:    string(e.Action),
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt,
	}
}

// ToAuditEntryResponses converts a slice of audit entries
func ToAuditEntryResponses(entries []*identity.UserAudit) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToAuditEntryResponse(e)
	}
	return responses
}
