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

type AiDecisionLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewAiDecisionLogRepository(db *gorm.DB) contract.AiDecisionLogRepository {
	return &AiDecisionLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *AiDecisionLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AiDecisionLogRepositoryImpl) Create(ctx context.Context, log *entity.AiDecisionLog) error {
	m := r.mapper.DecisionLogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.DecisionLogToEntity(m)
	return nil
}

func (r *AiDecisionLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiDecisionLog, error) {
	var models []*model.AiDecisionLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AiDecisionLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DecisionLogToEntity(m)
	}
	return entities, nil
}

func (r *AiDecisionLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AiDecisionLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
