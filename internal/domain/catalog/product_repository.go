package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductFilter contains filter options for querying products. All predicates
// are combined with AND; results are ordered newest-first.
type ProductFilter struct {
	shared.PageRequest

	// Search matches name, case-insensitive substring
	Search string

	// Filter by category (exact, lowercased)
	Category string

	// Price range, inclusive
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	// Filter by active flag
	Active *bool

	// Restrict to a single vendor
	VendorID *uuid.UUID

	// VerifiedVendorsOnly restricts results to products of verified vendors.
	// Public listing always sets this.
	VerifiedVendorsOnly bool
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
}
