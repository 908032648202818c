package dto

import (
	"time"

	"github.com/google/uuid"

	"flou-backend/pkg/dialog"
)

type CreateSessionRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
}

type CreateSessionResponse struct {
	Id             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	WelcomeMessage string    `json:"welcome_message"`
	CreatedAt      time.Time `json:"created_at"`
}

type SessionListItem struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	IsActive     bool       `json:"is_active"`
	MessageCount int64      `json:"message_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// SendMessageRequest targets an existing session or, when session_id is
// absent, creates a fresh one for the turn.
type SendMessageRequest struct {
	SessionId *uuid.UUID `json:"session_id"`
	Content   string     `json:"content" validate:"required,min=1,max=2000"`
}

type SendMessageResponse struct {
	SessionId    uuid.UUID           `json:"session_id"`
	MessageId    int64               `json:"message_id"`
	Reply        string              `json:"reply"`
	QuickReplies []dialog.QuickReply `json:"quick_replies,omitempty"`
	Metadata     map[string]any      `json:"metadata,omitempty"`
	Crisis       bool                `json:"crisis,omitempty"`
}

type MessageItem struct {
	Id        int64          `json:"id"`
	Sender    string         `json:"sender"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type MessageHistoryResponse struct {
	SessionId uuid.UUID     `json:"session_id"`
	Title     string        `json:"title"`
	IsActive  bool          `json:"is_active"`
	Messages  []MessageItem `json:"messages"`
}

type MessageFeedbackRequest struct {
	MessageId int64  `json:"message_id" validate:"required"`
	Feedback  string `json:"feedback" validate:"required,oneof=helpful not_helpful neutral"`
}

type ClearSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Cleared   bool      `json:"cleared"`
}
