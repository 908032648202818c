package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackTarget string

const (
	FeedbackTargetChatSession FeedbackTarget = "chat_session"
	FeedbackTargetExercise    FeedbackTarget = "exercise"
	FeedbackTargetGeneral     FeedbackTarget = "general"
	FeedbackTargetFeature     FeedbackTarget = "feature"
)

type Feedback struct {
	Id         int64
	UserId     uuid.UUID
	Rating     int
	Comment    *string
	TargetType FeedbackTarget
	TargetId   *string
	CreatedAt  time.Time
}
