package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the backend-driven order state. It only ever moves forward
// along the fulfilment chain, or jumps to CANCELLED from a non-terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// statusRank orders the forward progression. CANCELLED has no rank.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusPreparing: 2,
	OrderStatusReady:     3,
	OrderStatusDelivered: 4,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether no further transitions exist.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Cancellable reports whether a client-initiated cancel is permitted. The
// backend enforces the same window; this mirrors it for UI gating only.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition: one step forward along the chain, or CANCELLED from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return !s.IsTerminal()
	}

	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}

	return to == from+1
}

// Order is an immutable checkout snapshot; only its status advances, and
// only on the backend.
type Order struct {
	ID           string          `json:"orderId"`
	UserPhone    string          `json:"userId"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	OrderDate    time.Time       `json:"orderDate"`
	DeliveryDate time.Time       `json:"deliveryDate,omitempty"`
	Items        []OrderItem     `json:"orderItems"`
}

// OrderItem is one line of an order. Price is frozen from the cart at
// checkout and never re-derived from the catalogue.
type OrderItem struct {
	ItemID      string          `json:"itemId"`
	ItemType    ItemType        `json:"itemType"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	BusinessID  string          `json:"businessId"`
	BookingDate time.Time       `json:"bookingDate,omitempty"`
}

// DeliveryInfo is the delivery detail block submitted with a new order.
type DeliveryInfo struct {
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	DeliveryDate time.Time `json:"deliveryDate,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
}

// OrderRequest is the checkout payload. Line prices are the frozen cart
// prices; the backend owns the authoritative total.
type OrderRequest struct {
	UserPhone string       `json:"userId"`
	Items     []OrderItem  `json:"orderItems"`
	Delivery  DeliveryInfo `json:"deliveryInfo"`
}

// ContainsItem reports whether the order has a line for the given item.
func (o *Order) ContainsItem(itemID string, itemType ItemType) bool {
	for _, it := range o.Items {
		if it.ItemID == itemID && it.ItemType == itemType {
			return true
		}
	}
	return false
}

// ProgressStep is one entry of the fixed 5-step status display.
type ProgressStep struct {
	Label    string
	Status   OrderStatus
	Complete bool
	Current  bool
}

// Progression describes the full status display for an order.
type Progression struct {
	Steps []ProgressStep
	// Cancelled overrides the step display: every step renders incomplete
	// and the view is annotated that the order was cancelled.
	Cancelled bool
}

var progressionChain = []struct {
	label  string
	status OrderStatus
}{
	{"Placed", OrderStatusPending},
	{"Confirmed", OrderStatusConfirmed},
	{"Preparing", OrderStatusPreparing},
	{"Ready", OrderStatusReady},
	{"Delivered", OrderStatusDelivered},
}

// ProgressionFor maps a status onto the fixed forward progression.
func ProgressionFor(status OrderStatus) Progression {
	p := Progression{Steps: make([]ProgressStep, len(progressionChain))}

	if status == OrderStatusCancelled {
		p.Cancelled = true
		for i, step := range progressionChain {
			p.Steps[i] = ProgressStep{Label: step.label, Status: step.status}
		}
		return p
	}

	rank, ok := statusRank[status]
	if !ok {
		rank = -1
	}

	for i, step := range progressionChain {
		p.Steps[i] = ProgressStep{
			Label:    step.label,
			Status:   step.status,
			Complete: i <= rank,
			Current:  i == rank,
		}
	}
	return p
}
