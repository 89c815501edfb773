package chat

import (
	"time"

	"gorm.io/gorm"
)

// SenderRole enum
const (
	SenderUser  = "USER"
	SenderAdmin = "ADMIN"
)

// ChatMessage is one entry in a room's append-only message list.
// Messages are never edited or deleted.
type ChatMessage struct {
	gorm.Model
	ChatRoomID uint      `gorm:"index;not null" json:"chat_room_id"`
	SenderID   uint      `gorm:"not null" json:"sender_id"`
	SenderRole string    `gorm:"type:varchar(10);not null" json:"sender_role"` // USER or ADMIN
	SenderName string    `json:"sender_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
