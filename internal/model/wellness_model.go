package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DailyCheckin struct {
	Id        int64          `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	MoodLabel string         `gorm:"type:varchar(20);not null"`
	MoodScore int            `gorm:"not null"`
	Feelings  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Note      *string        `gorm:"type:varchar(500)"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (DailyCheckin) TableName() string {
	return "daily_checkins"
}

type RelaxationExercise struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EnergyLevel     string         `gorm:"type:varchar(10);not null;index"`
	Language        string         `gorm:"type:varchar(5);not null;default:'es';index"`
	ExerciseType    string         `gorm:"type:varchar(100);not null"`
	Title           string         `gorm:"type:varchar(200);not null"`
	Description     string         `gorm:"type:text;not null"`
	DurationSeconds int            `gorm:"not null"`
	Instructions    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	SortOrder       int            `gorm:"default:0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (RelaxationExercise) TableName() string {
	return "relaxation_exercises"
}

type ExerciseCompletion struct {
	Id              int64     `gorm:"primaryKey;autoIncrement"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	ExerciseType    string    `gorm:"type:varchar(100);not null"`
	EnergyLevel     string    `gorm:"type:varchar(10)"`
	DurationSeconds int       `gorm:"default:0"`
	CompletedAt     time.Time `gorm:"autoCreateTime"`
}

func (ExerciseCompletion) TableName() string {
	return "exercise_completions"
}

type MotivationalMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Language  string    `gorm:"type:varchar(5);not null;default:'es';index"`
	Message   string    `gorm:"type:text;not null"`
	Author    string    `gorm:"type:varchar(100);not null;default:'Flou'"`
	Category  *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MotivationalMessage) TableName() string {
	return "motivational_messages"
}
