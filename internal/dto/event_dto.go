package dto

import (
	"time"

	"github.com/google/uuid"
)

// CheckinRecordedMessage is the in-process event emitted after a daily
// check-in is stored, consumed by the streak worker.
type CheckinRecordedMessage struct {
	CheckinId int64     `json:"checkin_id"`
	UserId    uuid.UUID `json:"user_id"`
	MoodLabel string    `json:"mood_label"`
	MoodScore int       `json:"mood_score"`
	CreatedAt time.Time `json:"created_at"`
}
