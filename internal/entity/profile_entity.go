package entity

import (
	"time"

	"github.com/google/uuid"
)

type ThemePreference string
type LanguagePreference string

const (
	ThemeSystem ThemePreference = "system"
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"

	LanguageSpanish LanguagePreference = "es"
	LanguageEnglish LanguagePreference = "en"
)

// Profile rows are provisioned by the hosted auth platform; this service
// only ever reads and updates them.
type Profile struct {
	Id                 uuid.UUID
	FullName           *string
	Role               string
	InstitutionId      *int
	CareerProgram      *string
	Semester           *int
	Age                *int
	AvatarURL          *string
	ThemePreference    ThemePreference
	LanguagePreference LanguagePreference
	ResearchConsent    bool
	HealthConditions   []string
	Neurodivergence    []string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// ProfileStats is an aggregate, not a table.
type ProfileStats struct {
	CheckinStreak     int
	TotalCheckins     int
	ExercisesDone     int
	SessionsStarted   int
	LastCheckinAt     *time.Time
	DominantMoodLabel *string
}
