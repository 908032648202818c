package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.RelaxationExercise) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RelaxationExercise, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ExerciseCompletionRepository interface {
	Create(ctx context.Context, completion *entity.ExerciseCompletion) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExerciseCompletion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
