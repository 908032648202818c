package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id         int64     `gorm:"primaryKey;autoIncrement"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    *string   `gorm:"type:text"`
	TargetType string    `gorm:"type:varchar(50);not null"`
	TargetId   *string   `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
