package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatMessage is one entry in a session's history blob. History is append-only
// from the backend's perspective.
type ChatMessage struct {
	Role      string `json:"role"` // user|assistant
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type ChatSession struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	History   datatypes.JSON `gorm:"type:jsonb;column:history" json:"history"` // []ChatMessage
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
