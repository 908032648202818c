package unitofwork

import (
	"context"
	"fmt"

	"flou-backend/internal/repository/contract"
	"flou-backend/internal/repository/implementation"
	"flou-backend/pkg/sessionstate"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CheckinRepository() contract.CheckinRepository {
	return implementation.NewCheckinRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExerciseRepository() contract.ExerciseRepository {
	return implementation.NewExerciseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExerciseCompletionRepository() contract.ExerciseCompletionRepository {
	return implementation.NewExerciseCompletionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MotivationalMessageRepository() contract.MotivationalMessageRepository {
	return implementation.NewMotivationalMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EducationalCardRepository() contract.EducationalCardRepository {
	return implementation.NewEducationalCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedbackRepository() contract.FeedbackRepository {
	return implementation.NewFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AiDecisionLogRepository() contract.AiDecisionLogRepository {
	return implementation.NewAiDecisionLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionStateStore() sessionstate.Store {
	return implementation.NewSessionStateStore(u.getDB())
}

func (u *UnitOfWorkImpl) StrategyEmbeddingRepository() contract.StrategyEmbeddingRepository {
	return implementation.NewStrategyEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
