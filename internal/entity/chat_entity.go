package entity

import (
	"time"

	"flou-backend/pkg/sessionstate"

	"github.com/google/uuid"
)

type MessageSender string

const (
	SenderUser   MessageSender = "user"
	SenderAi     MessageSender = "ai"
	SenderSystem MessageSender = "system"
)

type MessageFeedback string

const (
	FeedbackHelpful    MessageFeedback = "helpful"
	FeedbackNotHelpful MessageFeedback = "not_helpful"
	FeedbackNeutral    MessageFeedback = "neutral"
)

type ChatSession struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	IsActive     bool
	CurrentState sessionstate.State
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

type ChatMessage struct {
	Id            int64
	ChatSessionId uuid.UUID
	Sender        MessageSender
	Content       string
	Metadata      map[string]any
	CreatedAt     time.Time
}

type AiDecisionLog struct {
	Id                 int64
	UserId             uuid.UUID
	ChatMessageId      int64
	DetectedParameters map[string]any
	AppliedStrategyId  *string
	ConfidenceScore    *float64
	CreatedAt          time.Time
}
