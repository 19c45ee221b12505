package model

import "time"

// SenderType identifies which side of a conversation wrote a message.
type SenderType string

const (
	SenderTypeClient SenderType = "CLIENT"
	SenderTypeVendor SenderType = "VENDOR"
)

// Chat is a conversation between one client and one vendor about one
// business, optionally scoped to an order. The (clientPhone, vendorPhone,
// businessId) triple is its identity; the backend returns the existing row
// when the triple is created twice.
type Chat struct {
	ID          string    `json:"chatId"`
	ClientPhone string    `json:"clientPhone"`
	VendorPhone string    `json:"vendorPhone"`
	BusinessID  string    `json:"businessId"`
	OrderID     string    `json:"orderId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// ChatMessage is one append-only entry in a chat. IsRead only ever moves
// false to true.
type ChatMessage struct {
	ID          string     `json:"messageId"`
	ChatID      string     `json:"chatId"`
	SenderPhone string     `json:"senderPhone"`
	SenderType  SenderType `json:"senderType"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"isRead"`
	SentAt      time.Time  `json:"sentAt,omitempty"`
}

// HasClientMessage reports whether the history contains at least one client
// message, which is what unlocks vendor replies.
func HasClientMessage(messages []ChatMessage) bool {
	for _, m := range messages {
		if m.SenderType == SenderTypeClient {
			return true
		}
	}
	return false
}
