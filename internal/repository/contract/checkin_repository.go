package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

type CheckinRepository interface {
	Create(ctx context.Context, checkin *entity.DailyCheckin) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyCheckin, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyCheckin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
