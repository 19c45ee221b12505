package service

import (
	"context"
	"testing"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ratingFixtures(t *testing.T, delivered bool) (*MockRatingAPI, *MockOrderAPI, *MockBusinessAPI) {
	t.Helper()

	businesses := new(MockBusinessAPI)
	businesses.On("Get", mock.Anything, "B1").Return(&model.Business{ID: "B1", VendorPhone: "999"}, nil)

	var history []model.Order
	if delivered {
		history = []model.Order{{
			UserPhone: "111",
			Status:    model.OrderStatusDelivered,
			Items:     []model.OrderItem{{ItemID: "D1", ItemType: model.ItemTypeDish, Quantity: 1}},
		}}
	}
	orders := new(MockOrderAPI)
	orders.On("ListByUser", mock.Anything, "111").Return(history, nil)

	return new(MockRatingAPI), orders, businesses
}

func TestRatingService_Submit_BlockedWithoutDeliveredOrder(t *testing.T) {
	sess := testSession(t, "111", model.UserTypeClient)
	ratings, orders, businesses := ratingFixtures(t, false)

	svc := NewRatingService(ratings, orders, businesses, sess, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "D1", model.ItemTypeDish, "B1", 4, "great")
	assert.ErrorIs(t, err, model.ErrRatingNotAllowed)
	ratings.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestRatingService_Submit_UpsertsForDeliveredOrder(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t, "111", model.UserTypeClient)
	ratings, orders, businesses := ratingFixtures(t, true)

	// The backend returns the same row on resubmission.
	saved := &model.Rating{ID: "R1", ClientPhone: "111", ItemID: "D1", ItemType: model.ItemTypeDish, Rating: 4}
	updated := &model.Rating{ID: "R1", ClientPhone: "111", ItemID: "D1", ItemType: model.ItemTypeDish, Rating: 2}
	ratings.On("Submit", ctx, mock.MatchedBy(func(r *model.Rating) bool {
		return r.ClientPhone == "111" && r.ItemID == "D1" && r.Rating == 4
	})).Return(saved, nil).Once()
	ratings.On("Submit", ctx, mock.MatchedBy(func(r *model.Rating) bool {
		return r.Rating == 2
	})).Return(updated, nil).Once()

	svc := NewRatingService(ratings, orders, businesses, sess, zerolog.Nop())

	first, err := svc.Submit(ctx, "D1", model.ItemTypeDish, "B1", 4, "great")
	require.NoError(t, err)
	second, err := svc.Submit(ctx, "D1", model.ItemTypeDish, "B1", 2, "changed my mind")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission updates, never duplicates")
	ratings.AssertExpectations(t)
}

func TestRatingService_Submit_OwningVendorBlocked(t *testing.T) {
	sess := testSession(t, "999", model.UserTypeVendor)

	businesses := new(MockBusinessAPI)
	businesses.On("Get", mock.Anything, "B1").Return(&model.Business{ID: "B1", VendorPhone: "999"}, nil)
	ratings := new(MockRatingAPI)

	svc := NewRatingService(ratings, new(MockOrderAPI), businesses, sess, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "D1", model.ItemTypeDish, "B1", 5, "")
	assert.ErrorIs(t, err, model.ErrRatingNotAllowed)
}

func TestRatingService_Submit_InvalidStars(t *testing.T) {
	sess := testSession(t, "111", model.UserTypeClient)

	svc := NewRatingService(new(MockRatingAPI), new(MockOrderAPI), new(MockBusinessAPI), sess, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "D1", model.ItemTypeDish, "B1", 0, "")
	assert.ErrorIs(t, err, model.ErrInvalidRating)

	_, err = svc.Submit(context.Background(), "D1", model.ItemTypeDish, "B1", 6, "")
	assert.ErrorIs(t, err, model.ErrInvalidRating)
}

func TestRatingService_CanRate_VendorWithoutOrdersAllowed(t *testing.T) {
	sess := testSession(t, "888", model.UserTypeVendor)

	businesses := new(MockBusinessAPI)
	businesses.On("Get", mock.Anything, "B1").Return(&model.Business{ID: "B1", VendorPhone: "999"}, nil)
	orders := new(MockOrderAPI)

	svc := NewRatingService(new(MockRatingAPI), orders, businesses, sess, zerolog.Nop())

	allowed, err := svc.CanRate(context.Background(), "D1", model.ItemTypeDish, "B1")
	require.NoError(t, err)
	assert.True(t, allowed)
	orders.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}
