package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
)

// OrderFilter carries the query parameters for listing orders.
// BuyerID scopes the list to a buyer's own orders; VendorID scopes it to
// orders containing at least one of the vendor's products.
type OrderFilter struct {
	shared.PageRequest
	Status   *OrderStatus
	BuyerID  *uuid.UUID
	VendorID *uuid.UUID
}

// OrderRepository defines the persistence port for orders
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)
}
