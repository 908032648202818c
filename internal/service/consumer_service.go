package service

import (
	"context"
	"encoding/json"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/events"
	pktNats "flou-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// streakMilestones are the streak lengths that earn a celebration.
var streakMilestones = map[int]bool{3: true, 7: true, 14: true, 30: true, 60: true, 100: true}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process check-in pipeline and turns streak
// milestones into domain events for the notification worker.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktNats.Publisher
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		natsPub:    natsPub,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CheckinRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal check-in message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	checkins, err := uow.CheckinRepository().FindAll(ctx,
		specification.ByUserID{UserID: payload.UserId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 120},
	)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load check-ins", map[string]interface{}{"error": err.Error(), "user_id": payload.UserId})
		msg.Nack()
		return
	}

	streak := computeCheckinStreak(checkins, time.Now())
	if streakMilestones[streak] && cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, events.NewStreakMilestone(payload.UserId.String(), streak)); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to publish streak milestone", map[string]interface{}{"error": err.Error()})
		} else {
			cs.logger.Info("ConsumerService", "Streak milestone reached", map[string]interface{}{"user_id": payload.UserId, "streak": streak})
		}
	}

	msg.Ack()
}
