package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// userAPI implements UserAPI.
type userAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewUserAPI creates a new user API client.
func NewUserAPI(c *Client, logger zerolog.Logger) UserAPI {
	return &userAPI{c: c, logger: logger.With().Str("client", "users").Logger()}
}

func (a *userAPI) Get(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := a.c.get(ctx, "/users/"+url.PathEscape(phone), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// businessAPI implements BusinessAPI.
type businessAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewBusinessAPI creates a new business API client.
func NewBusinessAPI(c *Client, logger zerolog.Logger) BusinessAPI {
	return &businessAPI{c: c, logger: logger.With().Str("client", "businesses").Logger()}
}

func (a *businessAPI) List(ctx context.Context) ([]model.Business, error) {
	var businesses []model.Business
	if err := a.c.get(ctx, "/businesses", nil, &businesses); err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	a.logger.Debug().Int("count", len(businesses)).Msg("businesses listed")
	return businesses, nil
}

func (a *businessAPI) Get(ctx context.Context, id string) (*model.Business, error) {
	var business model.Business
	if err := a.c.get(ctx, "/businesses/"+url.PathEscape(id), nil, &business); err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", id, err)
	}
	return &business, nil
}

func (a *businessAPI) ListByVendor(ctx context.Context, vendorPhone string) ([]model.Business, error) {
	query := url.Values{"vendorPhone": {vendorPhone}}
	var businesses []model.Business
	if err := a.c.get(ctx, "/businesses", query, &businesses); err != nil {
		return nil, fmt.Errorf("failed to list vendor businesses: %w", err)
	}
	return businesses, nil
}
