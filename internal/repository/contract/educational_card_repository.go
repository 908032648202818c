package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

type EducationalCardRepository interface {
	Create(ctx context.Context, card *entity.EducationalCard) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EducationalCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
