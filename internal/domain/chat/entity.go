package chat

import (
	"time"

	"estatehub/internal/domain/user"
)

// Chat represents the chats table. The ID is an opaque generated token,
// not a sequential key.
type Chat struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Users     []ChatUser `json:"users" gorm:"foreignKey:ChatID"`
	Messages  []Message  `json:"messages" gorm:"foreignKey:ChatID"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ChatUser is a persisted membership row. It is distinct from the transient
// room membership kept by the websocket hub.
type ChatUser struct {
	ID     uint       `json:"id" gorm:"primaryKey"`
	ChatID string     `json:"chatId" gorm:"type:varchar(64);index"`
	UserID uint       `json:"userId" gorm:"index"`
	User   *user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text"`
	UserID    uint      `json:"userId" gorm:"index"`
	ChatID    string    `json:"chatId" gorm:"type:varchar(64);index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

func (Chat) TableName() string {
	return "chats"
}

func (ChatUser) TableName() string {
	return "chat_users"
}

func (Message) TableName() string {
	return "messages"
}
