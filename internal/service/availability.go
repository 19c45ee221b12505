package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/cart"
	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// availabilityService implements AvailabilityService.
type availabilityService struct {
	availability api.AvailabilityAPI
	cart         *cart.Cart
	logger       zerolog.Logger
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(availability api.AvailabilityAPI, userCart *cart.Cart, logger zerolog.Logger) AvailabilityService {
	return &availabilityService{
		availability: availability,
		cart:         userCart,
		logger:       logger.With().Str("service", "availability").Logger(),
	}
}

func (s *availabilityService) Check(ctx context.Context, req model.AvailabilityRequest) (*model.Availability, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("a candidate date is required")
	}

	result, err := s.availability.Check(ctx, req)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddWithDate is the "pick a date, then add" flow. The cart only ever sees
// booking dates the backend confirmed; races with other buyers resolve
// server-side at order placement.
func (s *availabilityService) AddWithDate(ctx context.Context, item model.CartItem, date time.Time) error {
	result, err := s.Check(ctx, model.AvailabilityRequest{
		ItemID:     item.ID,
		ItemType:   item.Type,
		BusinessID: item.BusinessID,
		Date:       date,
	})
	if err != nil {
		return err
	}

	if !result.Available {
		s.logger.Info().
			Str("item_id", item.ID).
			Time("date", date).
			Msg("date unavailable")
		return model.ErrDateUnavailable
	}

	item.BookingDate = date
	if err := s.cart.Add(item); err != nil {
		return err
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Time("date", date).
		Int("remaining", result.RemainingQuantity).
		Msg("item added with confirmed booking date")
	return nil
}

func (s *availabilityService) NotifyWhenAvailable(ctx context.Context, req model.NotifyRequest) {
	if err := s.availability.Notify(ctx, req); err != nil {
		// Fire-and-forget: the side channel carries no delivery guarantee.
		s.logger.Warn().
			Str("item_id", req.ItemID).
			Err(err).
			Msg("availability notification request failed")
		return
	}
	s.logger.Info().Str("item_id", req.ItemID).Msg("availability notification requested")
}
