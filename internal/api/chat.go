package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
)

// chatAPI implements ChatAPI.
type chatAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewChatAPI creates a new chat API client.
func NewChatAPI(c *Client, logger zerolog.Logger) ChatAPI {
	return &chatAPI{c: c, logger: logger.With().Str("client", "chat").Logger()}
}

func (a *chatAPI) Create(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	var created model.Chat
	if err := a.c.post(ctx, "/chat", chat, &created); err != nil {
		return nil, fmt.Errorf("failed to open chat: %w", err)
	}
	a.logger.Debug().
		Str("chat_id", created.ID).
		Str("business_id", created.BusinessID).
		Msg("chat opened")
	return &created, nil
}

func (a *chatAPI) ListForUser(ctx context.Context, phone string) ([]model.Chat, error) {
	query := url.Values{"phone": {phone}}
	var chats []model.Chat
	if err := a.c.get(ctx, "/chat", query, &chats); err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

func (a *chatAPI) Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := a.c.get(ctx, "/chat/"+url.PathEscape(chatID)+"/messages", nil, &messages); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func (a *chatAPI) Send(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	var sent model.ChatMessage
	if err := a.c.post(ctx, "/chat/"+url.PathEscape(msg.ChatID)+"/messages", msg, &sent); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &sent, nil
}

func (a *chatAPI) CanVendorSend(ctx context.Context, chatID, vendorPhone string) (bool, error) {
	query := url.Values{"vendorPhone": {vendorPhone}}
	var result struct {
		CanSend bool `json:"canSend"`
	}
	if err := a.c.get(ctx, "/chat/"+url.PathEscape(chatID)+"/can-vendor-send", query, &result); err != nil {
		return false, fmt.Errorf("failed to check vendor send permission: %w", err)
	}
	return result.CanSend, nil
}

func (a *chatAPI) MarkRead(ctx context.Context, chatID, readerPhone string) error {
	body := map[string]string{"readerPhone": readerPhone}
	if err := a.c.put(ctx, "/chat/"+url.PathEscape(chatID)+"/mark-read", body, nil); err != nil {
		return fmt.Errorf("failed to mark chat read: %w", err)
	}
	return nil
}
