package dto

import "time"

type CheckinRequest struct {
	MoodLabel string   `json:"mood_label" validate:"required,oneof=feliz tranquilo neutral ansioso triste enojado estresado"`
	MoodScore int      `json:"mood_score" validate:"required,min=1,max=5"`
	Feelings  []string `json:"feelings" validate:"omitempty,max=10"`
	Note      *string  `json:"note" validate:"omitempty,max=500"`
}

type CheckinResponse struct {
	Id        int64     `json:"id"`
	MoodLabel string    `json:"mood_label"`
	MoodScore int       `json:"mood_score"`
	Streak    int       `json:"streak"`
	CreatedAt time.Time `json:"created_at"`
}

type EnergyRequest struct {
	EnergyLevel string `json:"energy_level" validate:"required,oneof=rojo ambar verde"`
}

type ExerciseResponse struct {
	ExerciseType    string   `json:"exercise_type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DurationSeconds int      `json:"duration_seconds"`
	Instructions    []string `json:"instructions"`
}

type MotivationResponse struct {
	Message  string  `json:"message"`
	Author   string  `json:"author"`
	Category *string `json:"category"`
}

type CompleteExerciseRequest struct {
	ExerciseType    string `json:"exercise_type" validate:"required,max=50"`
	EnergyLevel     string `json:"energy_level" validate:"required,oneof=rojo ambar verde"`
	DurationSeconds int    `json:"duration_seconds" validate:"omitempty,min=0,max=3600"`
}

type CompleteExerciseResponse struct {
	Id          int64     `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
}
