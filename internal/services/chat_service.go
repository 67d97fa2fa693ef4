package services

import (
	"context"
	"fmt"
	"strings"

	"estatehub/internal/broadcast"
	"estatehub/internal/domain/chat"
	"estatehub/internal/repository"
	estate_errors "estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

// MessagePageSize is the fixed window for paginated message retrieval.
const MessagePageSize = 20

type ChatService struct {
	chatRepo repository.ChatRepository
	gateway  broadcast.Gateway
	log      *logger.Logger
}

func NewChatService(chatRepo repository.ChatRepository, gateway broadcast.Gateway, log *logger.Logger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		gateway:  gateway,
		log:      log,
	}
}

// CreateChat creates a conversation for two or more distinct users and a
// membership row per user.
func (s *ChatService) CreateChat(ctx context.Context, userIDs []uint) (chat.Chat, error) {
	distinct := make([]uint, 0, len(userIDs))
	seen := make(map[uint]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	if len(distinct) < 2 {
		return chat.Chat{}, fmt.Errorf("at least two distinct user ids are required: %w", estate_errors.ErrInvalidInput)
	}

	c := chat.Chat{ID: chat.NewID()}
	for _, id := range distinct {
		c.Users = append(c.Users, chat.ChatUser{ChatID: c.ID, UserID: id})
	}

	if err := s.chatRepo.Create(ctx, &c); err != nil {
		return chat.Chat{}, err
	}
	return c, nil
}

// ListChatsForUser returns every chat the user is a member of, including
// member display info and messages.
func (s *ChatService) ListChatsForUser(ctx context.Context, userID uint) ([]chat.Chat, error) {
	chats, err := s.chatRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if chats == nil {
		chats = []chat.Chat{}
	}
	return chats, nil
}

// GetMessages pages through a chat's messages newest first. An unknown chat
// id yields an empty page rather than an error.
func (s *ChatService) GetMessages(ctx context.Context, chatID string, page int) ([]chat.Message, error) {
	if page < 1 {
		page = 1
	}
	messages, err := s.chatRepo.Messages(ctx, chatID, page, MessagePageSize)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	return messages, nil
}

// SendMessage stores the message, then fans it out to the chat room. The
// broadcast happens only after a successful write and its delivery is
// best-effort; a failed write never reaches the room.
func (s *ChatService) SendMessage(ctx context.Context, chatID string, userID uint, text string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" || userID == 0 {
		return chat.Message{}, fmt.Errorf("message text and user id are required: %w", estate_errors.ErrInvalidInput)
	}

	m := chat.Message{
		Text:   text,
		UserID: userID,
		ChatID: chatID,
	}
	if err := s.chatRepo.CreateMessage(ctx, &m); err != nil {
		return chat.Message{}, err
	}

	if s.gateway != nil {
		s.gateway.EmitToRoom(ctx, chatID, broadcast.Envelope{
			Event:   broadcast.EventGetMessage,
			ChatID:  chatID,
			Message: m,
		})
	}
	return m, nil
}

// DeleteChat removes the chat and everything hanging off it.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return err
	}
	return s.chatRepo.Delete(ctx, chatID)
}
