package service

import (
	"context"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/model"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// notificationService implements NotificationService.
type notificationService struct {
	notifications api.NotificationAPI
	session       *session.Session
	inflight      singleflight.Group
	logger        zerolog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notifications api.NotificationAPI, sess *session.Session, logger zerolog.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		session:       sess,
		logger:        logger.With().Str("service", "notification").Logger(),
	}
}

// Refresh pulls the feed for the session user's role, collapsing
// concurrent identical pulls into one backend request.
func (s *notificationService) Refresh(ctx context.Context) ([]model.Notification, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}

	result, err, _ := s.inflight.Do("notifications:"+user.Phone, func() (any, error) {
		return s.notifications.List(ctx, user.Phone, user.Type)
	})
	if err != nil {
		return nil, err
	}

	return result.([]model.Notification), nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	feed, err := s.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	return model.UnreadCount(feed), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	user := s.session.User()
	if user == nil {
		return model.ErrSessionExpired
	}
	return s.notifications.MarkRead(ctx, id, user.Type)
}

func (s *notificationService) ReadAll(ctx context.Context) error {
	user := s.session.User()
	if user == nil {
		return model.ErrSessionExpired
	}

	if err := s.notifications.ReadAll(ctx, user.Phone, user.Type); err != nil {
		return err
	}
	s.logger.Info().Str("user", user.Phone).Msg("notification feed marked read")
	return nil
}
