package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

type MotivationalMessageRepository interface {
	Create(ctx context.Context, message *entity.MotivationalMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MotivationalMessage, error)
	// FindRandom picks one message uniformly from the rows matching the specs.
	FindRandom(ctx context.Context, specs ...specification.Specification) (*entity.MotivationalMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
