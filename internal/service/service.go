// Package service holds the client-side flows: cart checkout, booking
// availability, chat gating, rating gating, and the notification feed.
// Every rule here mirrors a backend rule; the backend stays authoritative
// and nothing is ever retried automatically.
package service

import (
	"context"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"
)

// AvailabilityService runs the booking-date flow that guards adds to the
// cart.
type AvailabilityService interface {
	// Check asks the backend whether the item can be booked on the date.
	Check(ctx context.Context, req model.AvailabilityRequest) (*model.Availability, error)

	// AddWithDate confirms the date and, only when available, merges the
	// item with that date into the cart. Unavailable dates return
	// model.ErrDateUnavailable and leave the cart untouched.
	AddWithDate(ctx context.Context, item model.CartItem, date time.Time) error

	// NotifyWhenAvailable subscribes the user to a stock notification.
	// Fire-and-forget: a failure is logged, never surfaced or retried.
	NotifyWhenAvailable(ctx context.Context, req model.NotifyRequest)
}

// OrderService drives the order lifecycle from the client side.
type OrderService interface {
	// Checkout submits the current cart as an order. The cart must be
	// non-empty and single-business; prices travel frozen from the cart.
	// The cart is cleared only on success.
	Checkout(ctx context.Context, delivery model.DeliveryInfo) (*model.Order, error)

	// Get retrieves one order.
	Get(ctx context.Context, id string) (*model.Order, error)

	// Refresh pulls the session user's orders. Concurrent identical calls
	// are collapsed into one backend request.
	Refresh(ctx context.Context) ([]model.Order, error)

	// Cancel cancels an order while the cancel window is open. The local
	// window check mirrors the backend rule; the backend's verdict wins.
	Cancel(ctx context.Context, id string) (*model.Order, error)
}

// ChatService drives conversations between one client and one vendor.
type ChatService interface {
	// Open returns the conversation with the counterparty about a
	// business, creating it if absent, together with its history. Unread
	// incoming messages are marked read as the window opens.
	Open(ctx context.Context, otherPhone, businessID, orderID string) (*model.Chat, []model.ChatMessage, error)

	// List retrieves all of the session user's conversations.
	List(ctx context.Context) ([]model.Chat, error)

	// VendorGate re-queries whether the session vendor may send into the
	// chat. Queried state, never cached: another device may have changed
	// the history.
	VendorGate(ctx context.Context, chatID string) (bool, error)

	// Send appends a message. A vendor send is re-gated first and refused
	// locally with model.ErrVendorGated when the client has not written
	// yet; a stale-state backend rejection surfaces as a blocking error.
	Send(ctx context.Context, chat *model.Chat, text string) (*model.ChatMessage, error)
}

// RatingService drives item ratings.
type RatingService interface {
	// CanRate fetches what the predicate needs and evaluates it: clients
	// need a delivered order containing the item, and the owning vendor
	// can never rate their own item.
	CanRate(ctx context.Context, itemID string, itemType model.ItemType, businessID string) (bool, error)

	// Submit upserts the session user's rating after checking CanRate. A
	// second submission updates the existing record.
	Submit(ctx context.Context, itemID string, itemType model.ItemType, businessID string, stars int, comment string) (*model.Rating, error)

	// ListForItem retrieves an item's ratings.
	ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Rating, error)
}

// NotificationService drives the notification feed.
type NotificationService interface {
	// Refresh pulls the session user's feed. Concurrent identical calls
	// are collapsed into one backend request.
	Refresh(ctx context.Context) ([]model.Notification, error)

	// UnreadCount returns the number of unread entries in a fresh feed.
	UnreadCount(ctx context.Context) (int, error)

	// MarkRead flips one notification to read.
	MarkRead(ctx context.Context, id string) error

	// ReadAll flips the whole feed to read.
	ReadAll(ctx context.Context) error
}
