package chat

import "gorm.io/gorm"

// RoomStatus enum
const (
	RoomActive   = "ACTIVE"
	RoomClosed   = "CLOSED"
	RoomArchived = "ARCHIVED"
)

// RoomPriority enum
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// ChatRoom is one support conversation between a user and the admin team.
// Clients poll the room list and reconcile against the latest snapshot;
// last write wins on concurrent metadata edits.
type ChatRoom struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null" json:"user_id"`
	Subject         string `gorm:"not null" json:"subject"`
	Status          string `gorm:"type:varchar(20);default:'ACTIVE';index" json:"status"`
	Priority        string `gorm:"type:varchar(20);default:'MEDIUM'" json:"priority"`
	AssignedAdminID *uint  `gorm:"index" json:"assigned_admin_id"`
	IsDeleted       bool   `gorm:"default:false" json:"-"`

	// Relations
	Messages []ChatMessage `gorm:"foreignKey:ChatRoomID" json:"messages,omitempty"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// IsValidRoomStatus checks enum membership on ingestion
func IsValidRoomStatus(status string) bool {
	switch status {
	case RoomActive, RoomClosed, RoomArchived:
		return true
	}
	return false
}

// IsValidPriority checks enum membership on ingestion
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
