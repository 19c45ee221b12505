// Package cart keeps the user's selected items. The cart is the only state
// the client owns: everything else lives on the backend. At most one
// business's items may be in the cart at a time.
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Cart is a persisted, in-memory collection of cart lines for one user.
// Every mutation is written through to the store before it returns.
type Cart struct {
	mu        sync.Mutex
	userPhone string
	items     []model.CartItem
	index     map[model.CartKey]int
	store     Store
	logger    zerolog.Logger
}

// New creates the cart for a user, loading any persisted lines.
func New(userPhone string, store Store, logger zerolog.Logger) (*Cart, error) {
	items, err := store.Load(userPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c := &Cart{
		userPhone: userPhone,
		items:     items,
		index:     make(map[model.CartKey]int, len(items)),
		store:     store,
		logger:    logger.With().Str("component", "cart").Logger(),
	}
	for i, item := range items {
		c.index[item.Key()] = i
	}

	return c, nil
}

// Add merges an item into the cart. A new item is appended with its given
// quantity (minimum 1); an existing line has its quantity incremented, and
// its booking date replaced when the incoming item carries one. Items from
// a different business than the cart's current one are rejected with
// ErrDifferentBusiness; the caller may Clear and retry.
func (c *Cart) Add(item model.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if !item.Type.Valid() {
		return fmt.Errorf("invalid item type %q", item.Type)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) > 0 && c.items[0].BusinessID != item.BusinessID {
		c.logger.Warn().
			Str("cart_business", c.items[0].BusinessID).
			Str("item_business", item.BusinessID).
			Msg("rejected cross-business add")
		return model.ErrDifferentBusiness
	}

	if i, ok := c.index[item.Key()]; ok {
		c.items[i].Quantity += item.Quantity
		if !item.BookingDate.IsZero() {
			c.items[i].BookingDate = item.BookingDate
		}
	} else {
		c.index[item.Key()] = len(c.items)
		c.items = append(c.items, item)
	}

	return c.persistLocked()
}

// Remove deletes a line from the cart. Removing an absent line is a no-op.
func (c *Cart) Remove(itemID string, itemType model.ItemType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := model.CartKey{ItemID: itemID, Type: itemType}
	i, ok := c.index[key]
	if !ok {
		return nil
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}

	return c.persistLocked()
}

// Contains reports whether the cart holds a line for the item.
func (c *Cart) Contains(itemID string, itemType model.ItemType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.index[model.CartKey{ItemID: itemID, Type: itemType}]
	return ok
}

// SetQuantity sets a line's quantity. Quantity below 1 is rejected; use
// Remove to drop a line.
func (c *Cart) SetQuantity(itemID string, itemType model.ItemType, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[model.CartKey{ItemID: itemID, Type: itemType}]
	if !ok {
		return fmt.Errorf("item %s (%s) is not in the cart", itemID, itemType)
	}

	c.items[i].Quantity = quantity
	return c.persistLocked()
}

// SetBookingDate attaches a confirmed booking date to a line. Callers must
// only pass dates the availability check just confirmed.
func (c *Cart) SetBookingDate(itemID string, itemType model.ItemType, date time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[model.CartKey{ItemID: itemID, Type: itemType}]
	if !ok {
		return fmt.Errorf("item %s (%s) is not in the cart", itemID, itemType)
	}

	c.items[i].BookingDate = date
	return c.persistLocked()
}

// Items returns a snapshot copy of the cart lines in insertion order.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]model.CartItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// BusinessID returns the business the cart is scoped to, empty when the
// cart is empty.
func (c *Cart) BusinessID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return ""
	}
	return c.items[0].BusinessID
}

// Total returns the sum of line subtotals.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clear empties the cart. Called on checkout success or an explicit clear,
// never on navigation.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.index = make(map[model.CartKey]int)
	return c.persistLocked()
}

func (c *Cart) persistLocked() error {
	if err := c.store.Save(c.userPhone, c.items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
