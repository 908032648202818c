package mapper

import (
	"flou-backend/internal/entity"
	"flou-backend/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) CardToEntity(c *model.EducationalCard) *entity.EducationalCard {
	if c == nil {
		return nil
	}

	return &entity.EducationalCard{
		Id:          c.Id,
		Language:    entity.LanguagePreference(c.Language),
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Content:     c.Content,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ContentMapper) CardToModel(c *entity.EducationalCard) *model.EducationalCard {
	if c == nil {
		return nil
	}

	return &model.EducationalCard{
		Id:          c.Id,
		Language:    string(c.Language),
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Content:     c.Content,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ContentMapper) CardsToEntities(cards []*model.EducationalCard) []*entity.EducationalCard {
	entities := make([]*entity.EducationalCard, len(cards))
	for i, c := range cards {
		entities[i] = m.CardToEntity(c)
	}
	return entities
}
