package repository

import (
	"context"

	"estatehub/internal/domain/chat"
	"estatehub/internal/domain/property"
	"estatehub/internal/domain/user"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *property.Property) error
	GetByID(ctx context.Context, id uint) (property.Property, error)
	Search(ctx context.Context, f property.SearchFilter) ([]property.Property, error)
	Update(ctx context.Context, id uint, u property.Updates) (property.Property, error)
	DeleteImages(ctx context.Context, propertyID uint) error
	Delete(ctx context.Context, id uint) error
}

type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetByID(ctx context.Context, id string) (chat.Chat, error)
	ListForUser(ctx context.Context, userID uint) ([]chat.Chat, error)
	Messages(ctx context.Context, chatID string, page, limit int) ([]chat.Message, error)
	CreateMessage(ctx context.Context, m *chat.Message) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (user.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
