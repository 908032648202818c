package service

import (
	"context"
	"math/rand"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/entity"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/pkg/serverutils"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/events"
	pktNats "flou-backend/pkg/nats"

	"github.com/google/uuid"
)

type IWellnessService interface {
	Checkin(ctx context.Context, userId uuid.UUID, req *dto.CheckinRequest) (*dto.CheckinResponse, error)
	Energy(ctx context.Context, userId uuid.UUID, req *dto.EnergyRequest, lang string) (*dto.ExerciseResponse, error)
	Motivation(ctx context.Context, lang string) (*dto.MotivationResponse, error)
	CompleteExercise(ctx context.Context, userId uuid.UUID, req *dto.CompleteExerciseRequest) (*dto.CompleteExerciseResponse, error)
}

type wellnessService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	natsPub          *pktNats.Publisher
	logger           logger.ILogger
}

func NewWellnessService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IWellnessService {
	return &wellnessService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		natsPub:          natsPub,
		logger:           log,
	}
}

func (s *wellnessService) Checkin(ctx context.Context, userId uuid.UUID, req *dto.CheckinRequest) (*dto.CheckinResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CheckinRepository()

	checkin := entity.DailyCheckin{
		UserId:    userId,
		MoodLabel: req.MoodLabel,
		MoodScore: req.MoodScore,
		Feelings:  req.Feelings,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}

	if err := repo.Create(ctx, &checkin); err != nil {
		return nil, err
	}

	recent, err := repo.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 60},
	)
	if err != nil {
		return nil, err
	}
	streak := computeCheckinStreak(recent, time.Now())

	// Fan out: the in-process pipeline drives streak milestones, NATS carries
	// the domain event for other consumers.
	if s.publisherService != nil {
		if err := s.publisherService.PublishCheckinRecorded(ctx, &dto.CheckinRecordedMessage{
			CheckinId: checkin.Id,
			UserId:    userId,
			MoodLabel: checkin.MoodLabel,
			MoodScore: checkin.MoodScore,
			CreatedAt: checkin.CreatedAt,
		}); err != nil {
			s.logger.Warn("WellnessService", "Failed to publish check-in message", map[string]interface{}{"error": err.Error()})
		}
	}
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewCheckinRecorded(userId.String(), checkin.MoodLabel, checkin.MoodScore)); err != nil {
			s.logger.Warn("WellnessService", "Failed to publish check-in event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CheckinResponse{
		Id:        checkin.Id,
		MoodLabel: checkin.MoodLabel,
		MoodScore: checkin.MoodScore,
		Streak:    streak,
		CreatedAt: checkin.CreatedAt,
	}, nil
}

func (s *wellnessService) Energy(ctx context.Context, userId uuid.UUID, req *dto.EnergyRequest, lang string) (*dto.ExerciseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ExerciseRepository()

	exercises, err := repo.FindAll(ctx,
		specification.ByEnergyLevel{EnergyLevel: req.EnergyLevel},
		specification.ByLanguage{Language: lang},
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 && lang != "es" {
		// Seeded catalog always carries Spanish.
		exercises, err = repo.FindAll(ctx,
			specification.ByEnergyLevel{EnergyLevel: req.EnergyLevel},
			specification.ByLanguage{Language: "es"},
			specification.OrderBy{Field: "sort_order", Desc: false},
		)
		if err != nil {
			return nil, err
		}
	}
	if len(exercises) == 0 {
		return nil, serverutils.NewNotFoundError("no exercises available for this energy level")
	}

	ex := exercises[rand.Intn(len(exercises))]
	return &dto.ExerciseResponse{
		ExerciseType:    ex.ExerciseType,
		Title:           ex.Title,
		Description:     ex.Description,
		DurationSeconds: ex.DurationSeconds,
		Instructions:    ex.Instructions,
	}, nil
}

func (s *wellnessService) Motivation(ctx context.Context, lang string) (*dto.MotivationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MotivationalMessageRepository()

	msg, err := repo.FindRandom(ctx, specification.ByLanguage{Language: lang})
	if err != nil {
		return nil, err
	}
	if msg == nil && lang != "es" {
		msg, err = repo.FindRandom(ctx, specification.ByLanguage{Language: "es"})
		if err != nil {
			return nil, err
		}
	}
	if msg == nil {
		return nil, serverutils.NewNotFoundError("no motivational messages available")
	}

	return &dto.MotivationResponse{
		Message:  msg.Message,
		Author:   msg.Author,
		Category: msg.Category,
	}, nil
}

func (s *wellnessService) CompleteExercise(ctx context.Context, userId uuid.UUID, req *dto.CompleteExerciseRequest) (*dto.CompleteExerciseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	completion := entity.ExerciseCompletion{
		UserId:          userId,
		ExerciseType:    req.ExerciseType,
		EnergyLevel:     entity.EnergyLevel(req.EnergyLevel),
		DurationSeconds: req.DurationSeconds,
		CompletedAt:     time.Now(),
	}

	if err := uow.ExerciseCompletionRepository().Create(ctx, &completion); err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewExerciseCompleted(userId.String(), req.ExerciseType, req.EnergyLevel)); err != nil {
			s.logger.Warn("WellnessService", "Failed to publish exercise event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CompleteExerciseResponse{
		Id:          completion.Id,
		CompletedAt: completion.CompletedAt,
	}, nil
}
