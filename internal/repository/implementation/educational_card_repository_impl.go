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

type EducationalCardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewEducationalCardRepository(db *gorm.DB) contract.EducationalCardRepository {
	return &EducationalCardRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *EducationalCardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EducationalCardRepositoryImpl) Create(ctx context.Context, card *entity.EducationalCard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *EducationalCardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EducationalCard, error) {
	var models []*model.EducationalCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CardsToEntities(models), nil
}

func (r *EducationalCardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EducationalCard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
