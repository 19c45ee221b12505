package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one selected line in the cart. All items in a cart belong to
// the same business; the cart enforces that on add.
type CartItem struct {
	ID           string          `json:"id"`
	Type         ItemType        `json:"type"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	BusinessID   string          `json:"businessId"`
	BusinessName string          `json:"businessName"`
	Quantity     int             `json:"quantity"`
	// BookingDate is set only for dates confirmed available at selection
	// time. Zero means no booking slot is attached.
	BookingDate time.Time `json:"bookingDate,omitempty"`
}

// Subtotal returns price multiplied by quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Key identifies a cart line; the same catalogue item may exist under
// different types (a business can sell a theme and a dish with equal ids).
type CartKey struct {
	ItemID string
	Type   ItemType
}

// Key returns the line identity of the item.
func (i CartItem) Key() CartKey {
	return CartKey{ItemID: i.ID, Type: i.Type}
}
