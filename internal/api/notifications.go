package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// notificationAPI implements NotificationAPI. Clients and vendors read from
// separate endpoint groups but share the payload shape.
type notificationAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewNotificationAPI creates a new notification API client.
func NewNotificationAPI(c *Client, logger zerolog.Logger) NotificationAPI {
	return &notificationAPI{c: c, logger: logger.With().Str("client", "notifications").Logger()}
}

func feedPath(role model.UserType) string {
	if role == model.UserTypeClient {
		return "/client-notifications"
	}
	return "/notifications"
}

func (a *notificationAPI) List(ctx context.Context, phone string, role model.UserType) ([]model.Notification, error) {
	query := url.Values{"recipientPhone": {phone}}
	var feed []model.Notification
	if err := a.c.get(ctx, feedPath(role), query, &feed); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return feed, nil
}

func (a *notificationAPI) MarkRead(ctx context.Context, id string, role model.UserType) error {
	if err := a.c.put(ctx, feedPath(role)+"/"+url.PathEscape(id)+"/mark-read", nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (a *notificationAPI) ReadAll(ctx context.Context, phone string, role model.UserType) error {
	body := map[string]string{"recipientPhone": phone}
	if err := a.c.put(ctx, feedPath(role)+"/read-all", body, nil); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}
