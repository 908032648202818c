package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

type AiDecisionLogRepository interface {
	Create(ctx context.Context, log *entity.AiDecisionLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiDecisionLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
