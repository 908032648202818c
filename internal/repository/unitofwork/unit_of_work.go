package unitofwork

import (
	"context"

	"flou-backend/internal/repository/contract"
	"flou-backend/pkg/sessionstate"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	CheckinRepository() contract.CheckinRepository
	ExerciseRepository() contract.ExerciseRepository
	ExerciseCompletionRepository() contract.ExerciseCompletionRepository
	MotivationalMessageRepository() contract.MotivationalMessageRepository
	EducationalCardRepository() contract.EducationalCardRepository
	FeedbackRepository() contract.FeedbackRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	AiDecisionLogRepository() contract.AiDecisionLogRepository
	SessionStateStore() sessionstate.Store
	StrategyEmbeddingRepository() contract.StrategyEmbeddingRepository
	NotificationRepository() contract.NotificationRepository
}
