package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByEnergyLevel struct {
	EnergyLevel string
}

func (s ByEnergyLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("energy_level = ?", s.EnergyLevel)
}

type ByLanguage struct {
	Language string
}

func (s ByLanguage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("language = ?", s.Language)
}

// CreatedSince keeps rows created at or after the given instant.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}
