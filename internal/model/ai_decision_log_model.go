package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AiDecisionLog records which strategy the dialog engine applied on a turn,
// kept for offline analysis of the motivation model.
type AiDecisionLog struct {
	Id                 int64          `gorm:"primaryKey;autoIncrement"`
	UserId             uuid.UUID      `gorm:"type:uuid;not null;index"`
	ChatMessageId      int64          `gorm:"not null;index"`
	DetectedParameters datatypes.JSON `gorm:"type:jsonb"`
	AppliedStrategyId  *string        `gorm:"type:varchar(100)"`
	ConfidenceScore    *float64
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (AiDecisionLog) TableName() string {
	return "ai_decision_logs"
}
