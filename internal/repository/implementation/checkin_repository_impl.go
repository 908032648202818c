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

type CheckinRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewCheckinRepository(db *gorm.DB) contract.CheckinRepository {
	return &CheckinRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *CheckinRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckinRepositoryImpl) Create(ctx context.Context, checkin *entity.DailyCheckin) error {
	m := r.mapper.CheckinToModel(checkin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*checkin = *r.mapper.CheckinToEntity(m)
	return nil
}

func (r *CheckinRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyCheckin, error) {
	var models []*model.DailyCheckin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CheckinsToEntities(models), nil
}

func (r *CheckinRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyCheckin, error) {
	var m model.DailyCheckin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CheckinToEntity(&m), nil
}

func (r *CheckinRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DailyCheckin{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
