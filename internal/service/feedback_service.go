package service

import (
	"context"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/entity"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/events"
	pktNats "flou-backend/pkg/nats"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.FeedbackHistoryItem, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktNats.Publisher
	logger     logger.ILogger
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, natsPub *pktNats.Publisher, log logger.ILogger) IFeedbackService {
	return &feedbackService{uowFactory: uowFactory, natsPub: natsPub, logger: log}
}

func (s *feedbackService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback := entity.Feedback{
		UserId:     userId,
		Rating:     req.Rating,
		Comment:    req.Comment,
		TargetType: entity.FeedbackTarget(req.TargetType),
		TargetId:   req.TargetId,
		CreatedAt:  time.Now(),
	}

	if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewFeedbackSubmitted(userId.String(), req.TargetType, req.Rating)); err != nil {
			s.logger.Warn("FeedbackService", "Failed to publish feedback event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateFeedbackResponse{Id: feedback.Id}, nil
}

func (s *feedbackService) History(ctx context.Context, userId uuid.UUID) ([]*dto.FeedbackHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FeedbackHistoryItem, 0, len(items))
	for _, f := range items {
		result = append(result, &dto.FeedbackHistoryItem{
			Id:         f.Id,
			Rating:     f.Rating,
			Comment:    f.Comment,
			TargetType: string(f.TargetType),
			TargetId:   f.TargetId,
			CreatedAt:  f.CreatedAt,
		})
	}
	return result, nil
}
