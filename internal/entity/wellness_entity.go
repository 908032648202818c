package entity

import (
	"time"

	"github.com/google/uuid"
)

type EnergyLevel string

const (
	EnergyRed   EnergyLevel = "rojo"
	EnergyAmber EnergyLevel = "ambar"
	EnergyGreen EnergyLevel = "verde"
)

const (
	MoodHappy    = "feliz"
	MoodCalm     = "tranquilo"
	MoodNeutral  = "neutral"
	MoodAnxious  = "ansioso"
	MoodSad      = "triste"
	MoodAngry    = "enojado"
	MoodStressed = "estresado"
)

type DailyCheckin struct {
	Id        int64
	UserId    uuid.UUID
	MoodLabel string
	MoodScore int
	Feelings  []string
	Note      *string
	CreatedAt time.Time
}

type RelaxationExercise struct {
	Id              uuid.UUID
	EnergyLevel     EnergyLevel
	Language        LanguagePreference
	ExerciseType    string
	Title           string
	Description     string
	DurationSeconds int
	Instructions    []string
	SortOrder       int
	CreatedAt       time.Time
}

type ExerciseCompletion struct {
	Id              int64
	UserId          uuid.UUID
	ExerciseType    string
	EnergyLevel     EnergyLevel
	DurationSeconds int
	CompletedAt     time.Time
}

type MotivationalMessage struct {
	Id        uuid.UUID
	Language  LanguagePreference
	Message   string
	Author    string
	Category  *string
	CreatedAt time.Time
}
