package service

import (
	"context"
	"fmt"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/cart"
	"github.com/pal-lokesh/storefront/internal/model"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// orderService implements OrderService.
type orderService struct {
	orders   api.OrderAPI
	cart     *cart.Cart
	session  *session.Session
	inflight singleflight.Group
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders api.OrderAPI, userCart *cart.Cart, sess *session.Session, logger zerolog.Logger) OrderService {
	return &orderService{
		orders:  orders,
		cart:    userCart,
		session: sess,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// Checkout submits the cart snapshot as an order. Line prices are copied
// frozen from the cart; the catalogue is not consulted again.
func (s *orderService) Checkout(ctx context.Context, delivery model.DeliveryInfo) (*model.Order, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}

	snapshot := s.cart.Items()
	if len(snapshot) == 0 {
		return nil, model.ErrEmptyCart
	}

	businessID := snapshot[0].BusinessID
	items := make([]model.OrderItem, len(snapshot))
	for i, line := range snapshot {
		if line.BusinessID != businessID {
			// The cart enforces this on add; a mixed snapshot means the
			// persisted file was tampered with.
			return nil, model.ErrDifferentBusiness
		}
		items[i] = model.OrderItem{
			ItemID:      line.ID,
			ItemType:    line.Type,
			Quantity:    line.Quantity,
			Price:       line.Price,
			BusinessID:  line.BusinessID,
			BookingDate: line.BookingDate,
		}
	}

	req := &model.OrderRequest{
		UserPhone: user.Phone,
		Items:     items,
		Delivery:  delivery,
	}

	order, err := s.orders.Create(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Int("item_count", len(items)).Msg("checkout failed")
		return nil, err
	}

	// Order creation succeeded; a failure to clear the local cart must not
	// mask that.
	if err := s.cart.Clear(); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("order placed but cart could not be cleared")
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("total", order.TotalAmount.String()).
		Msg("checkout complete")
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.orders.Get(ctx, id)
}

// Refresh pulls the user's orders, collapsing concurrent identical calls
// (a manual refresh racing a notification-triggered one) into a single
// backend request.
func (s *orderService) Refresh(ctx context.Context) ([]model.Order, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}

	result, err, shared := s.inflight.Do("orders:"+user.Phone, func() (any, error) {
		return s.orders.ListByUser(ctx, user.Phone)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug().Msg("order refresh de-duplicated")
	}

	return result.([]model.Order), nil
}

// Cancel cancels an order while its status still permits it. The local
// window check mirrors the backend's rule for fast feedback; the backend's
// answer is final either way.
func (s *orderService) Cancel(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order before cancel: %w", err)
	}

	if !order.Status.Cancellable() {
		s.logger.Warn().
			Str("order_id", id).
			Str("status", string(order.Status)).
			Msg("cancel refused by status window")
		return nil, model.ErrNotCancellable
	}

	cancelled, err := s.orders.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
