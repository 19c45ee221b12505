package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func deliveredOrder(phone, itemID string, itemType ItemType) Order {
	return Order{
		UserPhone: phone,
		Status:    OrderStatusDelivered,
		Items:     []OrderItem{{ItemID: itemID, ItemType: itemType, Quantity: 1}},
	}
}

func TestCanRate_ClientNeedsDeliveredOrder(t *testing.T) {
	client := &User{Phone: "111", Type: UserTypeClient}

	assert.False(t, CanRate(client, "D1", ItemTypeDish, "999", nil),
		"no orders at all")

	pending := deliveredOrder("111", "D1", ItemTypeDish)
	pending.Status = OrderStatusPending
	assert.False(t, CanRate(client, "D1", ItemTypeDish, "999", []Order{pending}),
		"order not yet delivered")

	otherItem := deliveredOrder("111", "D2", ItemTypeDish)
	assert.False(t, CanRate(client, "D1", ItemTypeDish, "999", []Order{otherItem}),
		"delivered order does not contain the item")

	someoneElse := deliveredOrder("222", "D1", ItemTypeDish)
	assert.False(t, CanRate(client, "D1", ItemTypeDish, "999", []Order{someoneElse}),
		"delivered order belongs to another client")

	assert.True(t, CanRate(client, "D1", ItemTypeDish, "999",
		[]Order{deliveredOrder("111", "D1", ItemTypeDish)}))
}

func TestCanRate_OwningVendorBlocked(t *testing.T) {
	owner := &User{Phone: "999", Type: UserTypeVendor}
	otherVendor := &User{Phone: "888", Type: UserTypeVendor}

	assert.False(t, CanRate(owner, "D1", ItemTypeDish, "999", nil))
	assert.True(t, CanRate(otherVendor, "D1", ItemTypeDish, "999", nil))
}

func TestCanRate_NonClientRoles(t *testing.T) {
	admin := &User{Phone: "777", Type: UserTypeAdmin}
	assert.True(t, CanRate(admin, "D1", ItemTypeDish, "999", nil))

	assert.False(t, CanRate(nil, "D1", ItemTypeDish, "999", nil))
}

func TestValidStars(t *testing.T) {
	assert.False(t, ValidStars(0))
	assert.True(t, ValidStars(1))
	assert.True(t, ValidStars(5))
	assert.False(t, ValidStars(6))
}
