package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"confirmed to shipped", OrderStatusConfirmed, OrderStatusShipped, true},
		{"confirmed to cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"confirmed to delivered", OrderStatusConfirmed, OrderStatusDelivered, false},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped to cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"unknown status", OrderStatus("REFUNDED"), OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewOrder(t *testing.T) {
	buyerID := uuid.New()

	order, err := NewOrder(buyerID, "Medellín", "Cra 45 #12-34", PaymentCashOnDelivery)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.IsZero())
	assert.Empty(t, order.Items)

	_, err = NewOrder(uuid.Nil, "Medellín", "Cra 45", PaymentCard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_BUYER")

	_, err = NewOrder(buyerID, " ", "Cra 45", PaymentCard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_SHIPPING")

	_, err = NewOrder(buyerID, "Medellín", "Cra 45", PaymentMethod("CRYPTO"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_PAYMENT_METHOD")
}

func TestOrder_AddItem(t *testing.T) {
	order, err := NewOrder(uuid.New(), "Medellín", "Cra 45 #12-34", PaymentBankTransfer)
	require.NoError(t, err)

	vendorID := uuid.New()
	foodID := uuid.New()
	toyID := uuid.New()

	item, err := order.AddItem(foodID, vendorID, "Dog food 10kg", 2, decimal.NewFromInt(89900))
	require.NoError(t, err)
	assert.Equal(t, "179800", item.Amount.String())
	assert.Equal(t, "179800", order.TotalAmount.String())

	_, err = order.AddItem(foodID, vendorID, "Dog food 10kg", 1, decimal.NewFromInt(89900))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DUPLICATE_PRODUCT")

	_, err = order.AddItem(toyID, vendorID, "Rubber bone", 0, decimal.NewFromInt(15000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_QUANTITY")

	_, err = order.AddItem(toyID, vendorID, "Rubber bone", 3, decimal.NewFromInt(15000))
	require.NoError(t, err)
	assert.Equal(t, "224800", order.TotalAmount.String())
	assert.Len(t, order.Items, 2)
	assert.True(t, order.ContainsVendor(vendorID))
	assert.False(t, order.ContainsVendor(uuid.New()))

	require.NoError(t, order.Confirm())
	_, err = order.AddItem(uuid.New(), vendorID, "Leash", 1, decimal.NewFromInt(25000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_STATE")
}

func TestOrder_Lifecycle(t *testing.T) {
	order, err := NewOrder(uuid.New(), "Medellín", "Cra 45 #12-34", PaymentCard)
	require.NoError(t, err)

	err = order.Ship()
	require.Error(t, err)

	require.NoError(t, order.Confirm())
	require.NotNil(t, order.ConfirmedAt)

	require.NoError(t, order.Ship())
	require.NotNil(t, order.ShippedAt)

	err = order.Cancel("changed my mind")
	require.Error(t, err)

	require.NoError(t, order.Deliver())
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, OrderStatusDelivered, order.Status)
}

func TestOrder_Cancel(t *testing.T) {
	order, err := NewOrder(uuid.New(), "Medellín", "Cra 45 #12-34", PaymentCard)
	require.NoError(t, err)

	require.NoError(t, order.Cancel("out of stock"))
	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, "out of stock", order.CancelReason)
	require.NotNil(t, order.CancelledAt)

	err = order.Confirm()
	require.Error(t, err)
}
