package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/model"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/rs/zerolog"
)

// chatService implements ChatService.
type chatService struct {
	chat    api.ChatAPI
	session *session.Session
	logger  zerolog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(chat api.ChatAPI, sess *session.Session, logger zerolog.Logger) ChatService {
	return &chatService{
		chat:    chat,
		session: sess,
		logger:  logger.With().Str("service", "chat").Logger(),
	}
}

// Open resolves the conversation for the (client, vendor, business) triple.
// The backend returns the existing chat when the triple already exists, so
// opening twice never duplicates a conversation.
func (s *chatService) Open(ctx context.Context, otherPhone, businessID, orderID string) (*model.Chat, []model.ChatMessage, error) {
	user := s.session.User()
	if user == nil {
		return nil, nil, model.ErrSessionExpired
	}

	seed := &model.Chat{
		BusinessID: businessID,
		OrderID:    orderID,
		IsActive:   true,
	}
	switch user.Type {
	case model.UserTypeVendor:
		seed.VendorPhone = user.Phone
		seed.ClientPhone = otherPhone
	default:
		seed.ClientPhone = user.Phone
		seed.VendorPhone = otherPhone
	}

	chat, err := s.chat.Create(ctx, seed)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.chat.Messages(ctx, chat.ID)
	if err != nil {
		return nil, nil, err
	}

	// Opening the window reads the incoming side of the history. A failure
	// here must not hide the conversation itself.
	if err := s.chat.MarkRead(ctx, chat.ID, user.Phone); err != nil {
		s.logger.Warn().Str("chat_id", chat.ID).Err(err).Msg("failed to mark chat read")
	}

	return chat, messages, nil
}

func (s *chatService) List(ctx context.Context) ([]model.Chat, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}
	return s.chat.ListForUser(ctx, user.Phone)
}

// VendorGate re-queries the vendor-send permission. The verdict is derived
// from the live message history, so it is asked for on every window open
// and after every successful vendor send, never cached in between.
func (s *chatService) VendorGate(ctx context.Context, chatID string) (bool, error) {
	user := s.session.User()
	if user == nil {
		return false, model.ErrSessionExpired
	}
	if user.Type != model.UserTypeVendor {
		return true, nil
	}
	return s.chat.CanVendorSend(ctx, chatID, user.Phone)
}

// Send appends a message to the chat. Vendors are re-gated immediately
// before the send; if the UI was stale and the backend still refuses, the
// rejection surfaces as a blocking error rather than a silent retry.
func (s *chatService) Send(ctx context.Context, chat *model.Chat, text string) (*model.ChatMessage, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrSessionExpired
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	senderType := model.SenderTypeClient
	if user.Type == model.UserTypeVendor {
		senderType = model.SenderTypeVendor

		canSend, err := s.chat.CanVendorSend(ctx, chat.ID, user.Phone)
		if err != nil {
			return nil, err
		}
		if !canSend {
			s.logger.Warn().Str("chat_id", chat.ID).Msg("vendor send blocked by gate")
			return nil, model.ErrVendorGated
		}
	}

	msg := &model.ChatMessage{
		ChatID:      chat.ID,
		SenderPhone: user.Phone,
		SenderType:  senderType,
		Message:     text,
	}

	sent, err := s.chat.Send(ctx, msg)
	if err != nil {
		if api.IsForbidden(err) && senderType == model.SenderTypeVendor {
			// The gate flipped between our check and the send.
			return nil, model.ErrVendorGated
		}
		return nil, err
	}

	return sent, nil
}
