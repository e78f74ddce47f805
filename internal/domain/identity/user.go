package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/pawlig/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the role of a platform user. The set is closed: adding a
// role requires updating every exhaustive switch over it.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleShelter Role = "SHELTER"
	RoleVendor  Role = "VENDOR"
	RoleAdopter Role = "ADOPTER"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleShelter, RoleVendor, RoleAdopter:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// Capability represents an action a role may perform
type Capability string

const (
	CapModerateUsers   Capability = "moderate_users"
	CapVerifyPartners  Capability = "verify_partners"
	CapManagePets      Capability = "manage_pets"
	CapDecideAdoptions Capability = "decide_adoptions"
	CapManageProducts  Capability = "manage_products"
	CapApplyAdoption   Capability = "apply_adoption"
	CapFavoritePets    Capability = "favorite_pets"
	CapPlaceOrders     Capability = "place_orders"
)

// Can reports whether the role holds the given capability
func (r Role) Can(cap Capability) bool {
	switch r {
	case RoleAdmin:
		return cap == CapModerateUsers || cap == CapVerifyPartners
	case RoleShelter:
		return cap == CapManagePets || cap == CapDecideAdoptions
	case RoleVendor:
		return cap == CapManageProducts
	case RoleAdopter:
		return cap == CapApplyAdoption || cap == CapFavoritePets || cap == CapPlaceOrders
	}
	return false
}

// UserStatus represents the moderation status of a user
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// IsValid checks if the status is a known UserStatus
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBlocked
}

// Password cost for bcrypt
const bcryptCost = 12

// User represents a platform user. It is the aggregate root for
// identity-related operations. Users are never hard-deleted; moderation
// blocks them instead.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Municipality string
	Phone        string
	Avatar       string
	Status       UserStatus
	LastLoginAt  *time.Time
}

// NewUser creates a new active user with the given role
func NewUser(email, password, name string, role Role, municipality string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Name:              strings.TrimSpace(name),
		Role:              role,
		Municipality:      strings.TrimSpace(municipality),
		Status:            UserStatusActive,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// UpdateProfile updates the user's editable profile fields
func (u *User) UpdateProfile(name, municipality, phone string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	u.Name = strings.TrimSpace(name)
	u.Municipality = strings.TrimSpace(municipality)
	u.Phone = strings.TrimSpace(phone)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetAvatar sets the user's avatar URL
func (u *User) SetAvatar(avatar string) error {
	if avatar != "" && len(avatar) > 500 {
		return shared.NewDomainError("INVALID_AVATAR", "Avatar URL cannot exceed 500 characters")
	}

	u.Avatar = avatar
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Block blocks the user from the platform
func (u *User) Block() error {
	if u.Status == UserStatusBlocked {
		return shared.NewDomainError("ALREADY_BLOCKED", "User is already blocked")
	}

	u.Status = UserStatusBlocked
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Unblock reinstates a blocked user
func (u *User) Unblock() error {
	if u.Status != UserStatusBlocked {
		return shared.NewDomainError("NOT_BLOCKED", "User is not blocked")
	}

	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangeRole changes the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if u.Role == role {
		return shared.NewDomainError("ROLE_UNCHANGED", "User already has this role")
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RecordLogin records a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
	u.IncrementVersion()
}

// IsBlocked returns true if the user is blocked
func (u *User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}

// CanLogin returns true if the user may authenticate
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
