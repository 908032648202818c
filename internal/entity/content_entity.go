package entity

import "time"

type EducationalCard struct {
	Id          string
	Language    LanguagePreference
	Title       string
	Category    string
	Description string
	Content     string
	Icon        *string
	Color       *string
	SortOrder   int
	CreatedAt   time.Time
}
