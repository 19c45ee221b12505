package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// themeAPI implements ThemeAPI.
type themeAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewThemeAPI creates a new theme API client.
func NewThemeAPI(c *Client, logger zerolog.Logger) ThemeAPI {
	return &themeAPI{c: c, logger: logger.With().Str("client", "themes").Logger()}
}

func (a *themeAPI) ListByBusiness(ctx context.Context, businessID string) ([]model.Theme, error) {
	query := url.Values{"businessId": {businessID}}
	var themes []model.Theme
	if err := a.c.get(ctx, "/themes", query, &themes); err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}

func (a *themeAPI) Get(ctx context.Context, id string) (*model.Theme, error) {
	var theme model.Theme
	if err := a.c.get(ctx, "/themes/"+url.PathEscape(id), nil, &theme); err != nil {
		return nil, fmt.Errorf("failed to get theme %s: %w", id, err)
	}
	return &theme, nil
}

func (a *themeAPI) Create(ctx context.Context, theme *model.Theme) (*model.Theme, error) {
	var created model.Theme
	if err := a.c.post(ctx, "/themes", theme, &created); err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}
	a.logger.Info().Str("theme_id", created.ID).Msg("theme created")
	return &created, nil
}

func (a *themeAPI) Update(ctx context.Context, theme *model.Theme) (*model.Theme, error) {
	var updated model.Theme
	if err := a.c.put(ctx, "/themes/"+url.PathEscape(theme.ID), theme, &updated); err != nil {
		return nil, fmt.Errorf("failed to update theme %s: %w", theme.ID, err)
	}
	return &updated, nil
}

func (a *themeAPI) Delete(ctx context.Context, id string) error {
	if err := a.c.delete(ctx, "/themes/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete theme %s: %w", id, err)
	}
	return nil
}

// inventoryAPI implements InventoryAPI.
type inventoryAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewInventoryAPI creates a new inventory API client.
func NewInventoryAPI(c *Client, logger zerolog.Logger) InventoryAPI {
	return &inventoryAPI{c: c, logger: logger.With().Str("client", "inventory").Logger()}
}

func (a *inventoryAPI) ListByBusiness(ctx context.Context, businessID string) ([]model.InventoryItem, error) {
	query := url.Values{"businessId": {businessID}}
	var items []model.InventoryItem
	if err := a.c.get(ctx, "/inventory", query, &items); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (a *inventoryAPI) Get(ctx context.Context, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := a.c.get(ctx, "/inventory/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, fmt.Errorf("failed to get inventory item %s: %w", id, err)
	}
	return &item, nil
}

func (a *inventoryAPI) Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	var created model.InventoryItem
	if err := a.c.post(ctx, "/inventory", item, &created); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	a.logger.Info().Str("inventory_id", created.ID).Msg("inventory item created")
	return &created, nil
}

func (a *inventoryAPI) Update(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	var updated model.InventoryItem
	if err := a.c.put(ctx, "/inventory/"+url.PathEscape(item.ID), item, &updated); err != nil {
		return nil, fmt.Errorf("failed to update inventory item %s: %w", item.ID, err)
	}
	return &updated, nil
}

func (a *inventoryAPI) Delete(ctx context.Context, id string) error {
	if err := a.c.delete(ctx, "/inventory/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", id, err)
	}
	return nil
}

// dishAPI implements DishAPI.
type dishAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewDishAPI creates a new dish API client.
func NewDishAPI(c *Client, logger zerolog.Logger) DishAPI {
	return &dishAPI{c: c, logger: logger.With().Str("client", "dishes").Logger()}
}

func (a *dishAPI) ListByBusiness(ctx context.Context, businessID string) ([]model.Dish, error) {
	query := url.Values{"businessId": {businessID}}
	var dishes []model.Dish
	if err := a.c.get(ctx, "/dishes", query, &dishes); err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	return dishes, nil
}

func (a *dishAPI) Get(ctx context.Context, id string) (*model.Dish, error) {
	var dish model.Dish
	if err := a.c.get(ctx, "/dishes/"+url.PathEscape(id), nil, &dish); err != nil {
		return nil, fmt.Errorf("failed to get dish %s: %w", id, err)
	}
	return &dish, nil
}

func (a *dishAPI) Create(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	var created model.Dish
	if err := a.c.post(ctx, "/dishes", dish, &created); err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}
	a.logger.Info().Str("dish_id", created.ID).Msg("dish created")
	return &created, nil
}

func (a *dishAPI) Update(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	var updated model.Dish
	if err := a.c.put(ctx, "/dishes/"+url.PathEscape(dish.ID), dish, &updated); err != nil {
		return nil, fmt.Errorf("failed to update dish %s: %w", dish.ID, err)
	}
	return &updated, nil
}

func (a *dishAPI) Delete(ctx context.Context, id string) error {
	if err := a.c.delete(ctx, "/dishes/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete dish %s: %w", id, err)
	}
	return nil
}
