package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

// ScoredStrategy wraps a strategy embedding with its similarity score
type ScoredStrategy struct {
	Strategy   *entity.StrategyEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type StrategyEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.StrategyEmbedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategyEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategyEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar returns the nearest strategies by cosine distance with
	// their similarity scores, filtered by threshold.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredStrategy, error)
}
