package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile mirrors the auth platform's user id (no generated default): the row
// is provisioned by the platform's signup trigger, this service only reads and
// updates it.
type Profile struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName           *string   `gorm:"type:varchar(100)"`
	Role               string    `gorm:"type:varchar(50);not null;default:'student'"`
	InstitutionId      *int
	CareerProgram      *string `gorm:"type:varchar(200)"`
	Semester           *int
	Age                *int
	AvatarURL          *string        `gorm:"type:text"`
	ThemePreference    string         `gorm:"type:varchar(20);not null;default:'system'"`
	LanguagePreference string         `gorm:"type:varchar(5);not null;default:'es'"`
	ResearchConsent    bool           `gorm:"default:false"`
	HealthConditions   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Neurodivergence    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
