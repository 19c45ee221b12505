package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// orderAPI implements OrderAPI.
type orderAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewOrderAPI creates a new order API client.
func NewOrderAPI(c *Client, logger zerolog.Logger) OrderAPI {
	return &orderAPI{c: c, logger: logger.With().Str("client", "orders").Logger()}
}

func (a *orderAPI) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := a.c.post(ctx, "/orders", req, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	a.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Msg("order created")
	return &order, nil
}

func (a *orderAPI) Get(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := a.c.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

func (a *orderAPI) ListByUser(ctx context.Context, phone string) ([]model.Order, error) {
	query := url.Values{"userId": {phone}}
	var orders []model.Order
	if err := a.c.get(ctx, "/orders", query, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) ListByBusiness(ctx context.Context, businessID string) ([]model.Order, error) {
	query := url.Values{"businessId": {businessID}}
	var orders []model.Order
	if err := a.c.get(ctx, "/orders", query, &orders); err != nil {
		return nil, fmt.Errorf("failed to list business orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) Cancel(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := a.c.put(ctx, "/orders/"+url.PathEscape(id)+"/cancel", nil, &order); err != nil {
		return nil, fmt.Errorf("failed to cancel order %s: %w", id, err)
	}
	a.logger.Info().Str("order_id", id).Msg("order cancelled")
	return &order, nil
}

func (a *orderAPI) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	body := map[string]string{"status": string(status)}
	var order model.Order
	if err := a.c.put(ctx, "/orders/"+url.PathEscape(id)+"/status", body, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %s status: %w", id, err)
	}
	return &order, nil
}

// availabilityAPI implements AvailabilityAPI.
type availabilityAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewAvailabilityAPI creates a new availability API client.
func NewAvailabilityAPI(c *Client, logger zerolog.Logger) AvailabilityAPI {
	return &availabilityAPI{c: c, logger: logger.With().Str("client", "availability").Logger()}
}

func (a *availabilityAPI) Check(ctx context.Context, req model.AvailabilityRequest) (*model.Availability, error) {
	var result model.Availability
	if err := a.c.post(ctx, "/availability/check", req, &result); err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	a.logger.Debug().
		Str("item_id", req.ItemID).
		Str("item_type", string(req.ItemType)).
		Bool("available", result.Available).
		Msg("availability checked")
	return &result, nil
}

func (a *availabilityAPI) Notify(ctx context.Context, req model.NotifyRequest) error {
	if err := a.c.post(ctx, "/availability/notify", req, nil); err != nil {
		return fmt.Errorf("failed to request availability notification: %w", err)
	}
	return nil
}
