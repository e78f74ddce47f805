package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest identifies a product and quantity at checkout. Prices
// are never taken from the client.
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a simulated checkout
type CheckoutRequest struct {
	Items                []CheckoutItemRequest `json:"items" binding:"required,min=1,max=50,dive"`
	ShippingMunicipality string                `json:"shipping_municipality" binding:"required,max=100"`
	ShippingAddress      string                `json:"shipping_address" binding:"required,max=500"`
	PaymentMethod        string                `json:"payment_method" binding:"required,oneof=CASH_ON_DELIVERY BANK_TRANSFER CARD"`
}

// CancelRequest carries the optional cancellation reason
type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// OrderListFilter contains list query parameters for orders
type OrderListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// OrderItemResponse represents an order line item in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                   uuid.UUID           `json:"id"`
	BuyerID              uuid.UUID           `json:"buyer_id"`
	Items                []OrderItemResponse `json:"items"`
	TotalAmount          decimal.Decimal     `json:"total_amount"`
	ShippingMunicipality string              `json:"shipping_municipality"`
	ShippingAddress      string              `json:"shipping_address"`
	PaymentMethod        string              `json:"payment_method"`
	Status               string              `json:"status"`
	CancelReason         string              `json:"cancel_reason,omitempty"`
	ConfirmedAt          *time.Time          `json:"confirmed_at,omitempty"`
	ShippedAt            *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt          *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt          *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VendorID:    item.VendorID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}

	return OrderResponse{
		ID:                   o.ID,
		BuyerID:              o.BuyerID,
		Items:                items,
		TotalAmount:          o.TotalAmount,
		ShippingMunicipality: o.ShippingMunicipality,
		ShippingAddress:      o.ShippingAddress,
		PaymentMethod:        string(o.PaymentMethod),
		Status:               string(o.Status),
		CancelReason:         o.CancelReason,
		ConfirmedAt:          o.ConfirmedAt,
		ShippedAt:            o.ShippedAt,
		DeliveredAt:          o.DeliveredAt,
		CancelledAt:          o.CancelledAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []*trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return responses
}
