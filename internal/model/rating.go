package model

// Rating is a 1-5 star review of an item. The backend keeps at most one row
// per (clientPhone, itemId, itemType); a second submission updates in place.
type Rating struct {
	ID          string   `json:"ratingId"`
	ClientPhone string   `json:"clientPhone"`
	ItemID      string   `json:"itemId"`
	ItemType    ItemType `json:"itemType"`
	BusinessID  string   `json:"businessId"`
	Rating      int      `json:"rating"`
	Comment     string   `json:"comment,omitempty"`
}

// ValidStars reports whether the star value is in the 1-5 range.
func ValidStars(stars int) bool {
	return stars >= 1 && stars <= 5
}

// CanRate is the client-side rating gate, a pure function over already
// fetched data so it can never go stale between fetch and render. Clients
// may rate only items they received in a delivered order; vendors and admins
// may rate freely except the vendor who owns the item's business. The
// backend enforces the same rule; this gate is a UX convenience.
func CanRate(user *User, itemID string, itemType ItemType, ownerPhone string, orders []Order) bool {
	if user == nil {
		return false
	}

	if user.Type == UserTypeVendor && user.Phone == ownerPhone {
		return false
	}

	if user.Type != UserTypeClient {
		return true
	}

	for i := range orders {
		o := &orders[i]
		if o.UserPhone != user.Phone || o.Status != OrderStatusDelivered {
			continue
		}
		if o.ContainsItem(itemID, itemType) {
			return true
		}
	}
	return false
}
