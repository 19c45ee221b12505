package service

import (
	"context"
	"fmt"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/model"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/rs/zerolog"
)

// ratingService implements RatingService.
type ratingService struct {
	ratings    api.RatingAPI
	orders     api.OrderAPI
	businesses api.BusinessAPI
	session    *session.Session
	logger     zerolog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(ratings api.RatingAPI, orders api.OrderAPI, businesses api.BusinessAPI, sess *session.Session, logger zerolog.Logger) RatingService {
	return &ratingService{
		ratings:    ratings,
		orders:     orders,
		businesses: businesses,
		session:    sess,
		logger:     logger.With().Str("service", "rating").Logger(),
	}
}

// CanRate evaluates the rating gate over freshly fetched data. The verdict
// is never cached; staleness between fetch and render is the backend's to
// resolve when the submission lands.
func (s *ratingService) CanRate(ctx context.Context, itemID string, itemType model.ItemType, businessID string) (bool, error) {
	user := s.session.User()
	if user == nil {
		return false, model.ErrSessionExpired
	}

	business, err := s.businesses.Get(ctx, businessID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve item's business: %w", err)
	}

	var orders []model.Order
	if user.Type == model.UserTypeClient {
		orders, err = s.orders.ListByUser(ctx, user.Phone)
		if err != nil {
			return false, fmt.Errorf("failed to load order history: %w", err)
		}
	}

	return model.CanRate(user, itemID, itemType, business.VendorPhone, orders), nil
}

// Submit validates and upserts the user's rating. The backend keeps one
// rating per (client, item); resubmitting updates the existing record.
func (s *ratingService) Submit(ctx context.Context, itemID string, itemType model.ItemType, businessID string, stars int, comment string) (*model.Rating, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}

	if !model.ValidStars(stars) {
		return nil, model.ErrInvalidRating
	}
	if !itemType.Valid() {
		return nil, fmt.Errorf("invalid item type %q", itemType)
	}

	allowed, err := s.CanRate(ctx, itemID, itemType, businessID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.Warn().
			Str("item_id", itemID).
			Str("user", user.Phone).
			Msg("rating blocked by gate")
		return nil, model.ErrRatingNotAllowed
	}

	rating := &model.Rating{
		ClientPhone: user.Phone,
		ItemID:      itemID,
		ItemType:    itemType,
		BusinessID:  businessID,
		Rating:      stars,
		Comment:     comment,
	}

	saved, err := s.ratings.Submit(ctx, rating)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *ratingService) ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Rating, error) {
	return s.ratings.ListForItem(ctx, itemID, itemType)
}
