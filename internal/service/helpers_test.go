package service

import (
	"context"
	"testing"
	"time"

	"github.com/pal-lokesh/storefront/internal/cart"
	"github.com/pal-lokesh/storefront/internal/model"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testToken mints a signed token carrying the claims the session reads.
func testToken(t *testing.T, phone string, role model.UserType) string {
	t.Helper()

	claims := jwt.MapClaims{
		"phoneNumber": phone,
		"userType":    string(role),
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func testSession(t *testing.T, phone string, role model.UserType) *session.Session {
	t.Helper()
	sess, err := session.New(testToken(t, phone, role), zerolog.Nop())
	require.NoError(t, err)
	return sess
}

func testCart(t *testing.T, phone string) *cart.Cart {
	t.Helper()
	store := cart.NewFileStore(afero.NewMemMapFs(), "/data", zerolog.Nop())
	c, err := cart.New(phone, store, zerolog.Nop())
	require.NoError(t, err)
	return c
}

// MockOrderAPI is a mock implementation of api.OrderAPI.
type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderAPI) Get(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderAPI) ListByUser(ctx context.Context, phone string) ([]model.Order, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderAPI) ListByBusiness(ctx context.Context, businessID string) ([]model.Order, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderAPI) Cancel(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderAPI) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockChatAPI is a mock implementation of api.ChatAPI.
type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) Create(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	args := m.Called(ctx, chat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockChatAPI) ListForUser(ctx context.Context, phone string) ([]model.Chat, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chat), args.Error(1)
}

func (m *MockChatAPI) Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockChatAPI) Send(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *MockChatAPI) CanVendorSend(ctx context.Context, chatID, vendorPhone string) (bool, error) {
	args := m.Called(ctx, chatID, vendorPhone)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatAPI) MarkRead(ctx context.Context, chatID, readerPhone string) error {
	args := m.Called(ctx, chatID, readerPhone)
	return args.Error(0)
}

// MockRatingAPI is a mock implementation of api.RatingAPI.
type MockRatingAPI struct {
	mock.Mock
}

func (m *MockRatingAPI) ListForItem(ctx context.Context, itemID string, itemType model.ItemType) ([]model.Rating, error) {
	args := m.Called(ctx, itemID, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

func (m *MockRatingAPI) Submit(ctx context.Context, rating *model.Rating) (*model.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

// MockBusinessAPI is a mock implementation of api.BusinessAPI.
type MockBusinessAPI struct {
	mock.Mock
}

func (m *MockBusinessAPI) List(ctx context.Context) ([]model.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessAPI) Get(ctx context.Context, id string) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessAPI) ListByVendor(ctx context.Context, vendorPhone string) ([]model.Business, error) {
	args := m.Called(ctx, vendorPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

// MockAvailabilityAPI is a mock implementation of api.AvailabilityAPI.
type MockAvailabilityAPI struct {
	mock.Mock
}

func (m *MockAvailabilityAPI) Check(ctx context.Context, req model.AvailabilityRequest) (*model.Availability, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Availability), args.Error(1)
}

func (m *MockAvailabilityAPI) Notify(ctx context.Context, req model.NotifyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockNotificationAPI is a mock implementation of api.NotificationAPI.
type MockNotificationAPI struct {
	mock.Mock
}

func (m *MockNotificationAPI) List(ctx context.Context, phone string, role model.UserType) ([]model.Notification, error) {
	args := m.Called(ctx, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationAPI) MarkRead(ctx context.Context, id string, role model.UserType) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockNotificationAPI) ReadAll(ctx context.Context, phone string, role model.UserType) error {
	args := m.Called(ctx, phone, role)
	return args.Error(0)
}
