package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email        string              `gorm:"type:varchar(200);not null;uniqueIndex:idx_users_email"`
	PasswordHash string              `gorm:"type:varchar(100);not null"`
	Name         string              `gorm:"type:varchar(120);not null"`
	Role         identity.Role       `gorm:"type:varchar(20);not null;index"`
	Municipality string              `gorm:"type:varchar(100);index"`
	Phone        string              `gorm:"type:varchar(50)"`
	Avatar       string              `gorm:"type:text"`
	Status       identity.UserStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Name:              m.Name,
		Role:              m.Role,
		Municipality:      m.Municipality,
		Phone:             m.Phone,
		Avatar:            m.Avatar,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Name = u.Name
	m.Role = u.Role
	m.Municipality = u.Municipality
	m.Phone = u.Phone
	m.Avatar = u.Avatar
	m.Status = u.Status
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// UserAuditModel is the persistence model for the append-only moderation log.
type UserAuditModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key"`
	AdminID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	TargetID  uuid.UUID            `gorm:"type:uuid;not null;index:idx_user_audits_target_time,priority:1"`
	Action    identity.AuditAction `gorm:"type:varchar(30);not null"`
	Detail    string               `gorm:"type:varchar(500)"`
	CreatedAt time.Time            `gorm:"not null;index:idx_user_audits_target_time,priority:2,sort:desc"`
}

// TableName returns the table name for GORM
func (UserAuditModel) TableName() string {
	return "user_audits"
}

// ToDomain converts the persistence model to a domain UserAudit entry.
func (m *UserAuditModel) ToDomain() *identity.UserAudit {
	return &identity.UserAudit{
		ID:        m.ID,
		AdminID:   m.AdminID,
		TargetID:  m.TargetID,
		Action:    m.Action,
		Detail:    m.Detail,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain UserAudit entry.
func (m *UserAuditModel) FromDomain(a *identity.UserAudit) {
	m.ID = a.ID
	m.AdminID = a.AdminID
	m.TargetID = a.TargetID
	m.Action = a.Action
	m.Detail = a.Detail
	m.CreatedAt = a.CreatedAt
}

// UserAuditModelFromDomain creates a new persistence model from a domain UserAudit entry.
func UserAuditModelFromDomain(a *identity.UserAudit) *UserAuditModel {
	m := &UserAuditModel{}
	m.FromDomain(a)
	return m
}
