package mapper

import (
	"time"

	"flou-backend/internal/entity"
	"flou-backend/internal/model"

	"github.com/pgvector/pgvector-go"
)

type StrategyMapper struct{}

func NewStrategyMapper() *StrategyMapper {
	return &StrategyMapper{}
}

func (m *StrategyMapper) ToEntity(s *model.StrategyEmbedding) *entity.StrategyEmbedding {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.StrategyEmbedding{
		Id:         s.Id,
		StrategyId: s.StrategyId,
		Document:   s.Document,
		Embedding:  s.EmbeddingValue.Slice(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *StrategyMapper) ToModel(s *entity.StrategyEmbedding) *model.StrategyEmbedding {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.StrategyEmbedding{
		Id:             s.Id,
		StrategyId:     s.StrategyId,
		Document:       s.Document,
		EmbeddingValue: pgvector.NewVector(s.Embedding),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
