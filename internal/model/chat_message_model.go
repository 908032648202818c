package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id            int64          `gorm:"primaryKey;autoIncrement"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Sender        string         `gorm:"type:varchar(10);not null"` // "user" | "ai" | "system"
	Content       string         `gorm:"type:text;not null"`
	Metadata      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
