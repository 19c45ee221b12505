package api

import (
	"context"
	"io"

	"github.com/pal-lokesh/storefront/internal/model"
)

// UserAPI defines account lookups.
type UserAPI interface {
	// Get retrieves an account by phone number.
	Get(ctx context.Context, phone string) (*model.User, error)
}

// BusinessAPI defines business directory operations.
type BusinessAPI interface {
	// List retrieves all businesses.
	List(ctx context.Context) ([]model.Business, error)

	// Get retrieves one business.
	Get(ctx context.Context, id string) (*model.Business, error)

	// ListByVendor retrieves the businesses owned by a vendor.
	ListByVendor(ctx context.Context, vendorPhone string) ([]model.Business, error)
}

// ThemeAPI defines theme catalogue operations.
type ThemeAPI interface {
	ListByBusiness(ctx context.Context, businessID string) ([]model.Theme, error)
	Get(ctx context.Context, id string) (*model.Theme, error)
	Create(ctx context.Context, theme *model.Theme) (*model.Theme, error)
	Update(ctx context.Context, theme *model.Theme) (*model.Theme, error)
	Delete(ctx context.Context, id string) error
}

// InventoryAPI defines inventory catalogue operations.
type InventoryAPI interface {
	ListByBusiness(ctx context.Context, businessID string) ([]model.InventoryItem, error)
	Get(ctx context.Context, id string) (*model.InventoryItem, error)
	Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)
	Update(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// DishAPI defines dish catalogue operations.
type DishAPI interface {
	ListByBusiness(ctx context.Context, businessID string) ([]model.Dish, error)
	Get(ctx context.Context, id string) (*model.Dish, error)
	Create(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	Update(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	Delete(ctx context.Context, id string) error
}

// ImageAPI defines image-set operations for an item.
type ImageAPI interface {
	// ListForItem retrieves the image set of an item.
	ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Image, error)

	// Create registers an uploaded file path as an image of an item.
	Create(ctx context.Context, image *model.Image) (*model.Image, error)

	// SetPrimary marks one image as the item's featured image.
	SetPrimary(ctx context.Context, imageID string) error

	// Delete removes an image.
	Delete(ctx context.Context, imageID string) error
}

// AvailabilityAPI defines the booking-date availability check.
type AvailabilityAPI interface {
	// Check asks whether the item has stock on the candidate date.
	Check(ctx context.Context, req model.AvailabilityRequest) (*model.Availability, error)

	// Notify subscribes the user to a stock notification. Fire-and-forget.
	Notify(ctx context.Context, req model.NotifyRequest) error
}

// OrderAPI defines order lifecycle operations.
type OrderAPI interface {
	// Create submits a new order from a checkout snapshot.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// Get retrieves one order.
	Get(ctx context.Context, id string) (*model.Order, error)

	// ListByUser retrieves all orders placed by a user.
	ListByUser(ctx context.Context, phone string) ([]model.Order, error)

	// ListByBusiness retrieves all orders addressed to a business.
	ListByBusiness(ctx context.Context, businessID string) ([]model.Order, error)

	// Cancel requests cancellation. The backend enforces the cancel window.
	Cancel(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus advances an order's status (vendor side).
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// ChatAPI defines conversation operations.
type ChatAPI interface {
	// Create returns the chat for the (client, vendor, business) triple,
	// creating it if absent. The backend never duplicates a triple.
	Create(ctx context.Context, chat *model.Chat) (*model.Chat, error)

	// ListForUser retrieves all chats a phone number takes part in.
	ListForUser(ctx context.Context, phone string) ([]model.Chat, error)

	// Messages retrieves a chat's full message history.
	Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error)

	// Send appends a message to a chat.
	Send(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error)

	// CanVendorSend reports whether the vendor is allowed to send, which
	// requires at least one prior client message in the history.
	CanVendorSend(ctx context.Context, chatID, vendorPhone string) (bool, error)

	// MarkRead flips unread messages addressed to the reader.
	MarkRead(ctx context.Context, chatID, readerPhone string) error
}

// RatingAPI defines item rating operations.
type RatingAPI interface {
	// ListForItem retrieves all ratings of an item.
	ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Rating, error)

	// Submit upserts the caller's rating for an item. A second submission
	// for the same (client, item) updates the existing row.
	Submit(ctx context.Context, rating *model.Rating) (*model.Rating, error)
}

// NotificationAPI defines notification feed operations. Vendors and clients
// read from separate endpoint groups.
type NotificationAPI interface {
	// List retrieves the recipient's feed for their role.
	List(ctx context.Context, phone string, role model.UserType) ([]model.Notification, error)

	// MarkRead flips one notification to read.
	MarkRead(ctx context.Context, id string, role model.UserType) error

	// ReadAll flips the recipient's entire feed to read.
	ReadAll(ctx context.Context, phone string, role model.UserType) error
}

// FileAPI defines binary upload.
type FileAPI interface {
	// Upload sends a file via multipart form and returns the server path.
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
