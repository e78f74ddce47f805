package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderService handles simulated checkout and the order lifecycle
type OrderService struct {
	orderRepo  trade.OrderRepository
	vendorRepo partner.VendorRepository
	txScope    TransactionScope
	logger     *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	vendorRepo partner.VendorRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
		txScope:    txScope,
		logger:     logger,
	}
}

// Checkout places a simulated order. Unit prices are read from the product
// records inside the transaction, and stock is decremented atomically with
// the order creation. No payment gateway is involved.
func (s *OrderService) Checkout(ctx context.Context, buyerID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	order, err := trade.NewOrder(buyerID, req.ShippingMunicipality, req.ShippingAddress, trade.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		products, err := repos.ProductRepo().FindByIDs(ctx, productIDs)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]int, len(products))
		for i, p := range products {
			byID[p.ID] = i
		}

		for _, item := range req.Items {
			idx, ok := byID[item.ProductID]
			if !ok {
				return shared.NewDomainError("PRODUCT_NOT_FOUND", "Product "+item.ProductID.String()+" does not exist")
			}
			product := products[idx]

			if !product.Active {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product "+product.Name+" is not available")
			}
			vendor, err := s.vendorRepo.FindByID(ctx, product.VendorID)
			if err != nil {
				return err
			}
			if !vendor.Verified {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product "+product.Name+" is not available")
			}

			if err := product.DecrementStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Update(ctx, product); err != nil {
				return err
			}

			if _, err := order.AddItem(product.ID, product.VendorID, product.Name, item.Quantity, product.Price); err != nil {
				return err
			}
		}

		return repos.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.String("total", order.TotalAmount.String()),
		zap.Int("items", len(order.Items)))

	response := ToOrderResponse(order)
	return &response, nil
}

// ListOwn returns the caller's orders, newest first
func (s *OrderService) ListOwn(ctx context.Context, buyerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter, err := toDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.BuyerID = &buyerID

	orders, total, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// ListForVendor returns orders containing at least one product of the
// caller's vendor
func (s *OrderService) ListForVendor(ctx context.Context, ownerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	domainFilter, err := toDomainFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	domainFilter.VendorID = &vendor.ID

	orders, total, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// GetByID retrieves an order visible to the caller. Buyers see their own
// orders; vendors see orders containing their products.
func (s *OrderService) GetByID(ctx context.Context, callerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID {
		vendor, err := s.vendorRepo.FindByOwner(ctx, callerID)
		if err != nil || !order.ContainsVendor(vendor.ID) {
			return nil, shared.ErrForbidden
		}
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Confirm moves an order to CONFIRMED. Only a vendor with products in the
// order may advance it.
func (s *OrderService) Confirm(ctx context.Context, ownerID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.advance(ctx, ownerID, orderID, (*trade.Order).Confirm)
}

// Ship moves an order to SHIPPED
func (s *OrderService) Ship(ctx context.Context, ownerID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.advance(ctx, ownerID, orderID, (*trade.Order).Ship)
}

// Deliver moves an order to DELIVERED
func (s *OrderService) Deliver(ctx context.Context, ownerID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.advance(ctx, ownerID, orderID, (*trade.Order).Deliver)
}

// Cancel cancels an order before shipment. Only the buyer may cancel.
// Reserved stock is returned to the products inside the same transaction.
func (s *OrderService) Cancel(ctx context.Context, buyerID, orderID uuid.UUID, reason string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, shared.ErrForbidden
	}

	if err := order.Cancel(reason); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range order.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				// Product was deleted after purchase; nothing to restock.
				if derr, ok := err.(*shared.DomainError); ok && derr.Code == shared.ErrNotFound.Code {
					continue
				}
				return err
			}
			if err := product.SetStock(product.Stock + item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Update(ctx, product); err != nil {
				return err
			}
		}
		return repos.OrderRepo().Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order cancelled",
		zap.String("order_id", order.ID.String()),
		zap.String("buyer_id", buyerID.String()))

	response := ToOrderResponse(order)
	return &response, nil
}

// SetStatus forces an order status transition. Admin only; linear
// progression is still enforced by the aggregate.
func (s *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, status string) (*OrderResponse, error) {
	target := trade.OrderStatus(status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch target {
	case trade.OrderStatusConfirmed:
		err = order.Confirm()
	case trade.OrderStatusShipped:
		err = order.Ship()
	case trade.OrderStatusDelivered:
		err = order.Deliver()
	case trade.OrderStatusCancelled:
		err = order.Cancel("Cancelled by administrator")
	default:
		err = shared.NewDomainError("INVALID_STATE", "Cannot transition order to "+status)
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order status set",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)))

	response := ToOrderResponse(order)
	return &response, nil
}

func (s *OrderService) advance(ctx context.Context, ownerID, orderID uuid.UUID, transition func(*trade.Order) error) (*OrderResponse, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.ContainsVendor(vendor.ID) {
		return nil, shared.ErrForbidden
	}

	if err := transition(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order advanced",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)))

	response := ToOrderResponse(order)
	return &response, nil
}

func toDomainFilter(f OrderListFilter) (trade.OrderFilter, error) {
	filter := trade.OrderFilter{}
	filter.Page = f.Page
	filter.PageSize = f.PageSize
	filter.Normalize()

	if f.Status != "" {
		status := trade.OrderStatus(f.Status)
		if !status.IsValid() {
			return filter, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+f.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}
