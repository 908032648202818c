package mapper

import (
	"time"

	"flou-backend/internal/entity"
	"flou-backend/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:                 p.Id,
		FullName:           p.FullName,
		Role:               p.Role,
		InstitutionId:      p.InstitutionId,
		CareerProgram:      p.CareerProgram,
		Semester:           p.Semester,
		Age:                p.Age,
		AvatarURL:          p.AvatarURL,
		ThemePreference:    entity.ThemePreference(p.ThemePreference),
		LanguagePreference: entity.LanguagePreference(p.LanguagePreference),
		ResearchConsent:    p.ResearchConsent,
		HealthConditions:   jsonToStrings(p.HealthConditions),
		Neurodivergence:    jsonToStrings(p.Neurodivergence),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:                 p.Id,
		FullName:           p.FullName,
		Role:               p.Role,
		InstitutionId:      p.InstitutionId,
		CareerProgram:      p.CareerProgram,
		Semester:           p.Semester,
		Age:                p.Age,
		AvatarURL:          p.AvatarURL,
		ThemePreference:    string(p.ThemePreference),
		LanguagePreference: string(p.LanguagePreference),
		ResearchConsent:    p.ResearchConsent,
		HealthConditions:   stringsToJSON(p.HealthConditions),
		Neurodivergence:    stringsToJSON(p.Neurodivergence),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}
