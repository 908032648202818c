package model

import "time"

type EducationalCard struct {
	Id          string    `gorm:"type:varchar(100);primaryKey"`
	Language    string    `gorm:"type:varchar(5);primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	Icon        *string   `gorm:"type:varchar(20)"`
	Color       *string   `gorm:"type:varchar(20)"`
	SortOrder   int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (EducationalCard) TableName() string {
	return "educational_cards"
}
