package service

import (
	"context"
	"fmt"
	"strings"

	"flou-backend/internal/dto"
	"flou-backend/internal/entity"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/events"
	pktNats "flou-backend/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery pushes real-time updates to connected clients.
// Implemented by the WebSocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification entity.Notification)
	Broadcast(notification entity.Notification)
}

type INotificationService interface {
	Start()
	GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationItem, error)
	GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *notificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), nil)

	switch typeCode {
	case events.TypeStreakMilestone:
		return s.notifyStreakMilestone(ctx, event)
	case events.TypeExerciseCompleted:
		return s.notifyExerciseCompleted(ctx, event)
	default:
		// CHECKIN_RECORDED, CRISIS_DETECTED etc. have no user-facing
		// notification. Crisis alerts go to the support inbox instead.
		return nil
	}
}

func (s *notificationService) notifyStreakMilestone(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	userId, err := payloadUserId(payload)
	if err != nil {
		s.logger.Warn("NotificationService", "Streak event without valid user_id", map[string]interface{}{"error": err.Error()})
		return nil
	}
	streak, _ := payload["streak"].(float64)

	notification := entity.Notification{
		Id:       uuid.New(),
		UserId:   userId,
		Type:     entity.NotificationStreakMilestone,
		Title:    "¡Racha desbloqueada!",
		Body:     fmt.Sprintf("Llevas %d días seguidos registrando cómo te sientes. ¡Sigue así!", int(streak)),
		Channels: []string{"in_app", "push"},
	}
	return s.persistAndDeliver(ctx, notification)
}

func (s *notificationService) notifyExerciseCompleted(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	userId, err := payloadUserId(payload)
	if err != nil {
		return nil
	}

	notification := entity.Notification{
		Id:       uuid.New(),
		UserId:   userId,
		Type:     entity.NotificationWellnessNudge,
		Title:    "Ejercicio completado",
		Body:     "Buen trabajo dándote ese momento. Tu bienestar también cuenta.",
		Channels: []string{"in_app"},
	}
	return s.persistAndDeliver(ctx, notification)
}

func (s *notificationService) persistAndDeliver(ctx context.Context, notification entity.Notification) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		s.logger.Error("NotificationService", "Failed to persist notification", map[string]interface{}{"error": err.Error()})
		return err
	}
	if s.delivery != nil {
		s.delivery.Send(notification.UserId, notification)
	}
	return nil
}

func payloadUserId(payload map[string]interface{}) (uuid.UUID, error) {
	raw, _ := payload["user_id"].(string)
	return uuid.Parse(raw)
}

func (s *notificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, &dto.NotificationItem{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Channels:  n.Channels,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.FilterBy{Field: "is_read", Value: false},
	)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}