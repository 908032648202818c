package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id                 uuid.UUID  `json:"id"`
	FullName           *string    `json:"full_name"`
	Role               string     `json:"role"`
	InstitutionId      *int       `json:"institution_id"`
	CareerProgram      *string    `json:"career_program"`
	Semester           *int       `json:"semester"`
	Age                *int       `json:"age"`
	AvatarURL          *string    `json:"avatar_url"`
	ThemePreference    string     `json:"theme_preference"`
	LanguagePreference string     `json:"language_preference"`
	ResearchConsent    bool       `json:"research_consent"`
	HealthConditions   []string   `json:"health_conditions"`
	Neurodivergence    []string   `json:"neurodivergence"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// UpdateSettingsRequest updates only the fields present in the payload.
type UpdateSettingsRequest struct {
	ThemePreference    *string `json:"theme_preference" validate:"omitempty,oneof=light dark system"`
	LanguagePreference *string `json:"language_preference" validate:"omitempty,oneof=es en"`
	ResearchConsent    *bool   `json:"research_consent"`
}

type UpdateSettingsResponse struct {
	Message string `json:"message"`
}

type UpdateProfileRequest struct {
	FullName         *string   `json:"full_name" validate:"omitempty,min=1,max=100"`
	CareerProgram    *string   `json:"career_program" validate:"omitempty,max=200"`
	Semester         *int      `json:"semester" validate:"omitempty,min=1,max=12"`
	Age              *int      `json:"age" validate:"omitempty,min=16,max=100"`
	HealthConditions *[]string `json:"health_conditions"`
	Neurodivergence  *[]string `json:"neurodivergence"`
}

type UpdateProfileResponse struct {
	UpdatedFields []string `json:"updated_fields"`
}

type ProfileStatsResponse struct {
	CheckinStreak    int       `json:"checkin_streak"`
	TotalCheckins    int       `json:"total_checkins"`
	LastMoods        []string  `json:"last_moods"`
	AverageMoodScore float64   `json:"average_mood_score"`
	DominantMood     *string   `json:"dominant_mood"`
	GeneratedAt      time.Time `json:"generated_at"`
}
