package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemType identifies one of the three sellable item kinds.
type ItemType string

const (
	ItemTypeTheme     ItemType = "THEME"
	ItemTypeInventory ItemType = "INVENTORY"
	ItemTypeDish      ItemType = "DISH"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeTheme, ItemTypeInventory, ItemTypeDish:
		return true
	}
	return false
}

// ParseItemType parses a user-supplied item type string.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "theme", "THEME":
		return ItemTypeTheme, nil
	case "inventory", "INVENTORY":
		return ItemTypeInventory, nil
	case "dish", "plate", "DISH", "PLATE":
		return ItemTypeDish, nil
	}
	return "", fmt.Errorf("unknown item type: %q", s)
}

// Business represents a vendor-owned business.
type Business struct {
	ID          string `json:"businessId"`
	Name        string `json:"businessName"`
	VendorPhone string `json:"vendorPhone"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// Theme is a decorative theme offered by a business.
type Theme struct {
	ID          string          `json:"themeId"`
	BusinessID  string          `json:"businessId"`
	Name        string          `json:"themeName"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// InventoryItem is a rentable or sellable inventory entry.
type InventoryItem struct {
	ID         string          `json:"inventoryId"`
	BusinessID string          `json:"businessId"`
	Name       string          `json:"inventoryName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// Dish is a plate offered by a catering business.
type Dish struct {
	ID         string          `json:"plateId"`
	BusinessID string          `json:"businessId"`
	Name       string          `json:"plateName"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category,omitempty"`
}

// Image is one entry in an item's image set.
type Image struct {
	ID        string    `json:"imageId"`
	ItemID    string    `json:"itemId"`
	ItemType  ItemType  `json:"itemType"`
	Path      string    `json:"imagePath"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
