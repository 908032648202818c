package implementation

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/mapper"
	"flou-backend/internal/model"
	"flou-backend/internal/repository/contract"
	"flou-backend/internal/repository/specification"

	"gorm.io/gorm"
)

type ExerciseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewExerciseRepository(db *gorm.DB) contract.ExerciseRepository {
	return &ExerciseRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *ExerciseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExerciseRepositoryImpl) Create(ctx context.Context, exercise *entity.RelaxationExercise) error {
	m := r.mapper.ExerciseToModel(exercise)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exercise = *r.mapper.ExerciseToEntity(m)
	return nil
}

func (r *ExerciseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RelaxationExercise, error) {
	var models []*model.RelaxationExercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ExercisesToEntities(models), nil
}

func (r *ExerciseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RelaxationExercise{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ExerciseCompletionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewExerciseCompletionRepository(db *gorm.DB) contract.ExerciseCompletionRepository {
	return &ExerciseCompletionRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *ExerciseCompletionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExerciseCompletionRepositoryImpl) Create(ctx context.Context, completion *entity.ExerciseCompletion) error {
	m := r.mapper.CompletionToModel(completion)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*completion = *r.mapper.CompletionToEntity(m)
	return nil
}

func (r *ExerciseCompletionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExerciseCompletion, error) {
	var models []*model.ExerciseCompletion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ExerciseCompletion, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CompletionToEntity(m)
	}
	return entities, nil
}

func (r *ExerciseCompletionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ExerciseCompletion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
