package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// ratingAPI implements RatingAPI.
type ratingAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewRatingAPI creates a new rating API client.
func NewRatingAPI(c *Client, logger zerolog.Logger) RatingAPI {
	return &ratingAPI{c: c, logger: logger.With().Str("client", "ratings").Logger()}
}

func (a *ratingAPI) ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Rating, error) {
	query := url.Values{
		"itemId":   {itemID},
		"itemType": {string(itemType)},
	}
	var ratings []model.Rating
	if err := a.c.get(ctx, "/ratings", query, &ratings); err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

func (a *ratingAPI) Submit(ctx context.Context, rating *model.Rating) (*model.Rating, error) {
	var saved model.Rating
	if err := a.c.post(ctx, "/ratings", rating, &saved); err != nil {
		return nil, fmt.Errorf("failed to submit rating: %w", err)
	}
	a.logger.Info().
		Str("rating_id", saved.ID).
		Str("item_id", saved.ItemID).
		Int("stars", saved.Rating).
		Msg("rating submitted")
	return &saved, nil
}
