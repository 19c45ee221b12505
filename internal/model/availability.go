package model

import "time"

// AvailabilityRequest asks whether an item can be booked on a date.
type AvailabilityRequest struct {
	ItemID     string    `json:"itemId"`
	ItemType   ItemType  `json:"itemType"`
	BusinessID string    `json:"businessId"`
	Date       time.Time `json:"date"`
}

// Availability is the backend's answer to an availability check.
type Availability struct {
	Available         bool `json:"available"`
	RemainingQuantity int  `json:"remainingQuantity"`
}

// NotifyRequest subscribes the user to a stock notification for an item.
// Fire-and-forget: delivery is not tracked client-side.
type NotifyRequest struct {
	ItemID         string   `json:"itemId"`
	ItemType       ItemType `json:"itemType"`
	BusinessID     string   `json:"businessId"`
	RecipientPhone string   `json:"recipientPhone"`
}
