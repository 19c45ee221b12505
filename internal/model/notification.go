package model

import "time"

// NotificationType classifies backend-generated notifications.
type NotificationType string

const (
	NotificationOrderPlaced    NotificationType = "ORDER_PLACED"
	NotificationOrderConfirmed NotificationType = "ORDER_CONFIRMED"
	NotificationOrderPreparing NotificationType = "ORDER_PREPARING"
	NotificationOrderReady     NotificationType = "ORDER_READY"
	NotificationOrderDelivered NotificationType = "ORDER_DELIVERED"
	NotificationOrderCancelled NotificationType = "ORDER_CANCELLED"
	NotificationStockAvailable NotificationType = "STOCK_AVAILABLE"
)

// Notification is a backend-created event for a recipient. Read state is
// the only field the client may mutate.
type Notification struct {
	ID             string           `json:"notificationId"`
	RecipientPhone string           `json:"recipientPhone"`
	Type           NotificationType `json:"notificationType"`
	IsRead         bool             `json:"isRead"`
	OrderID        string           `json:"orderId,omitempty"`
	DeliveryDate   time.Time        `json:"deliveryDate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt,omitempty"`
}

// UnreadCount counts unread notifications in a fetched feed.
func UnreadCount(feed []Notification) int {
	n := 0
	for _, item := range feed {
		if !item.IsRead {
			n++
		}
	}
	return n
}
