package adoption

import (
	"context"

	"github.com/pawlig/backend/internal/domain/adoption"
	"github.com/pawlig/backend/internal/domain/catalog"
)

// TransactionalRepositories provides access to the repositories that take
// part in an adoption decision, scoped to one transaction.
type TransactionalRepositories interface {
	AdoptionRepo() adoption.Repository
	PetRepo() catalog.PetRepository
}

// TransactionScope executes a function atomically. A decision updates the
// application, the pet and the sibling applications together or not at all.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope runs the function without a real transaction. Useful
// for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	adoptionRepo adoption.Repository
	petRepo      catalog.PetRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given
// repositories
func NewNoOpTransactionScope(adoptionRepo adoption.Repository, petRepo catalog.PetRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
	}
}

// Execute runs the function directly against the wrapped repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AdoptionRepo returns the adoption repository
func (s *NoOpTransactionScope) AdoptionRepo() adoption.Repository {
	return s.adoptionRepo
}

// PetRepo returns the pet repository
func (s *NoOpTransactionScope) PetRepo() catalog.PetRepository {
	return s.petRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
