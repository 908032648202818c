package implementation

import (
	"context"
	"errors"

	"flou-backend/internal/entity"
	"flou-backend/internal/mapper"
	"flou-backend/internal/model"
	"flou-backend/internal/repository/contract"
	"flou-backend/internal/repository/specification"

	"gorm.io/gorm"
)

type MotivationalMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewMotivationalMessageRepository(db *gorm.DB) contract.MotivationalMessageRepository {
	return &MotivationalMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *MotivationalMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MotivationalMessageRepositoryImpl) Create(ctx context.Context, message *entity.MotivationalMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MotivationalMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MotivationalMessage, error) {
	var models []*model.MotivationalMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MotivationalMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MessageToEntity(m)
	}
	return entities, nil
}

func (r *MotivationalMessageRepositoryImpl) FindRandom(ctx context.Context, specs ...specification.Specification) (*entity.MotivationalMessage, error) {
	var m model.MotivationalMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("RANDOM()").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MessageToEntity(&m), nil
}

func (r *MotivationalMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MotivationalMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
