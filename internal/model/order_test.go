package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo_ForwardOnly(t *testing.T) {
	chain := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivered,
	}

	for i, from := range chain {
		for j, to := range chain {
			got := from.CanTransitionTo(to)
			if j == i+1 {
				assert.True(t, got, "%s -> %s should be legal", from, to)
			} else {
				assert.False(t, got, "%s -> %s should be illegal", from, to)
			}
		}
	}
}

func TestOrderStatus_CanTransitionTo_Cancelled(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusReady.CanTransitionTo(OrderStatusCancelled))

	// Terminal states stay terminal.
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
}

func TestOrderStatus_Cancellable(t *testing.T) {
	assert.True(t, OrderStatusPending.Cancellable())
	assert.True(t, OrderStatusConfirmed.Cancellable())
	assert.False(t, OrderStatusPreparing.Cancellable())
	assert.False(t, OrderStatusReady.Cancellable())
	assert.False(t, OrderStatusDelivered.Cancellable())
	assert.False(t, OrderStatusCancelled.Cancellable())
}

func TestProgressionFor_MidFlight(t *testing.T) {
	p := ProgressionFor(OrderStatusPreparing)

	require.Len(t, p.Steps, 5)
	assert.False(t, p.Cancelled)

	assert.True(t, p.Steps[0].Complete)
	assert.True(t, p.Steps[1].Complete)
	assert.True(t, p.Steps[2].Complete)
	assert.True(t, p.Steps[2].Current)
	assert.False(t, p.Steps[3].Complete)
	assert.False(t, p.Steps[4].Complete)
}

func TestProgressionFor_Cancelled(t *testing.T) {
	p := ProgressionFor(OrderStatusCancelled)

	require.Len(t, p.Steps, 5)
	assert.True(t, p.Cancelled)
	for _, step := range p.Steps {
		assert.False(t, step.Complete, "cancelled orders render every step incomplete")
		assert.False(t, step.Current)
	}
}

func TestOrder_ContainsItem(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ItemID: "D1", ItemType: ItemTypeDish, Quantity: 1, Price: decimal.NewFromInt(250)},
		},
	}

	assert.True(t, order.ContainsItem("D1", ItemTypeDish))
	assert.False(t, order.ContainsItem("D1", ItemTypeTheme), "same id under another type is a different item")
	assert.False(t, order.ContainsItem("D2", ItemTypeDish))
}
