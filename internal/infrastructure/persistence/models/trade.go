package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	BuyerID              uuid.UUID           `gorm:"type:uuid;not null;index"`
	Items                []OrderItemModel    `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount          decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	ShippingMunicipality string              `gorm:"type:varchar(100);not null"`
	ShippingAddress      string              `gorm:"type:text;not null"`
	PaymentMethod        trade.PaymentMethod `gorm:"type:varchar(30);not null"`
	Status               trade.OrderStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CancelReason         string              `gorm:"type:varchar(500)"`
	ConfirmedAt          *time.Time
	ShippedAt            *time.Time
	DeliveredAt          *time.Time
	CancelledAt          *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = *item.ToDomain()
	}
	return &trade.Order{
		BaseAggregateRoot:    m.ToDomainAggregateRoot(),
		BuyerID:              m.BuyerID,
		Items:                items,
		TotalAmount:          m.TotalAmount,
		ShippingMunicipality: m.ShippingMunicipality,
		ShippingAddress:      m.ShippingAddress,
		PaymentMethod:        m.PaymentMethod,
		Status:               m.Status,
		CancelReason:         m.CancelReason,
		ConfirmedAt:          m.ConfirmedAt,
		ShippedAt:            m.ShippedAt,
		DeliveredAt:          m.DeliveredAt,
		CancelledAt:          m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.BuyerID = o.BuyerID
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
	m.TotalAmount = o.TotalAmount
	m.ShippingMunicipality = o.ShippingMunicipality
	m.ShippingAddress = o.ShippingAddress
	m.PaymentMethod = o.PaymentMethod
	m.Status = o.Status
	m.CancelReason = o.CancelReason
	m.ConfirmedAt = o.ConfirmedAt
	m.ShippedAt = o.ShippedAt
	m.DeliveredAt = o.DeliveredAt
	m.CancelledAt = o.CancelledAt
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line item.
// Line items are immutable once the order is placed.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() *trade.OrderItem {
	return &trade.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		VendorID:    m.VendorID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain OrderItem.
func (m *OrderItemModel) FromDomain(i *trade.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.VendorID = i.VendorID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Amount = i.Amount
	m.CreatedAt = i.CreatedAt
}
