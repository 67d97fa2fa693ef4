package repository

import (
	"context"
	"errors"

	"estatehub/internal/domain/chat"
	estate_errors "estatehub/pkg/errors"

	"gorm.io/gorm"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	res := r.db.WithContext(ctx).Create(c)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return estate_errors.ErrConflict
		}
		return res.Error
	}
	return nil
}

func (r *PostgresChatRepository) GetByID(ctx context.Context, id string) (chat.Chat, error) {
	var c chat.Chat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Chat{}, estate_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *PostgresChatRepository) ListForUser(ctx context.Context, userID uint) ([]chat.Chat, error) {
	var chats []chat.Chat

	memberOf := r.db.WithContext(ctx).Model(&chat.ChatUser{}).
		Select("chat_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Where("id IN (?)", memberOf).
		Preload("Users.User").
		Preload("Messages").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *PostgresChatRepository) Messages(ctx context.Context, chatID string, page, limit int) ([]chat.Message, error) {
	var messages []chat.Message
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresChatRepository) CreateMessage(ctx context.Context, m *chat.Message) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return estate_errors.ErrNotFound
		}
		return res.Error
	}
	return nil
}

// Delete removes the chat together with its messages and membership rows in
// one transaction. Messages never orphan; that policy is ours, not the
// store's default.
func (r *PostgresChatRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&chat.Message{}, "chat_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&chat.ChatUser{}, "chat_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&chat.Chat{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return estate_errors.ErrNotFound
		}
		return nil
	})
}
