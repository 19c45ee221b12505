package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// imageAPI implements ImageAPI.
type imageAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewImageAPI creates a new image API client.
func NewImageAPI(c *Client, logger zerolog.Logger) ImageAPI {
	return &imageAPI{c: c, logger: logger.With().Str("client", "images").Logger()}
}

func (a *imageAPI) ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Image, error) {
	query := url.Values{
		"itemId":   {itemID},
		"itemType": {string(itemType)},
	}
	var images []model.Image
	if err := a.c.get(ctx, "/images", query, &images); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (a *imageAPI) Create(ctx context.Context, image *model.Image) (*model.Image, error) {
	var created model.Image
	if err := a.c.post(ctx, "/images", image, &created); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	a.logger.Info().
		Str("image_id", created.ID).
		Str("item_id", created.ItemID).
		Msg("image registered")
	return &created, nil
}

func (a *imageAPI) SetPrimary(ctx context.Context, imageID string) error {
	if err := a.c.put(ctx, "/images/"+url.PathEscape(imageID)+"/set-primary", nil, nil); err != nil {
		return fmt.Errorf("failed to set primary image %s: %w", imageID, err)
	}
	return nil
}

func (a *imageAPI) Delete(ctx context.Context, imageID string) error {
	if err := a.c.delete(ctx, "/images/"+url.PathEscape(imageID)); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", imageID, err)
	}
	return nil
}
