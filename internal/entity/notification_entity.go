package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationCheckinReminder NotificationType = "checkin_reminder"
	NotificationStreakMilestone NotificationType = "streak_milestone"
	NotificationWellnessNudge   NotificationType = "wellness_nudge"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Channels  []string
	IsRead    bool
	CreatedAt time.Time
}
