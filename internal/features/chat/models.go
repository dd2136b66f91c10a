package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one entry in a user's ordered transcript.
type ChatMessage struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Sender      string         `gorm:"size:10;not null" json:"sender"`
	Personality string         `gorm:"size:20;not null" json:"personality"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type SendMessageRequest struct {
	Personality string `json:"personality"`
	Text        string `json:"text"`
}

type SendMessageResponse struct {
	UserMessage ChatMessage `json:"user_message"`
	Reply       ChatMessage `json:"reply"`
}
