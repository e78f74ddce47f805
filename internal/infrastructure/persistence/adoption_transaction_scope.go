package persistence

import (
	"context"

	appadoption "github.com/pawlig/backend/internal/application/adoption"
	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormAdoptionTransactionScope implements the adoption TransactionScope
// using GORM transactions. Approving an application flips the pet status and
// auto-rejects competing applications, which must commit or roll back as one.
type GormAdoptionTransactionScope struct {
	db *gorm.DB
}

// NewGormAdoptionTransactionScope creates a new GormAdoptionTransactionScope
func NewGormAdoptionTransactionScope(db *gorm.DB) *GormAdoptionTransactionScope {
	return &GormAdoptionTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormAdoptionTransactionScope) Execute(ctx context.Context, fn func(repos appadoption.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormAdoptionRepositories{tx: tx}
		return fn(repos)
	})
}

type gormAdoptionRepositories struct {
	tx *gorm.DB
}

// AdoptionRepo returns the adoption repository scoped to the current transaction
func (r *gormAdoptionRepositories) AdoptionRepo() adoption.Repository {
	return NewGormAdoptionRepository(r.tx)
}

// PetRepo returns the pet repository scoped to the current transaction
func (r *gormAdoptionRepositories) PetRepo() catalog.PetRepository {
	return NewGormPetRepository(r.tx)
}

// Ensure GormAdoptionTransactionScope implements TransactionScope
var _ appadoption.TransactionScope = (*GormAdoptionTransactionScope)(nil)

// Ensure gormAdoptionRepositories implements TransactionalRepositories
var _ appadoption.TransactionalRepositories = (*gormAdoptionRepositories)(nil)
