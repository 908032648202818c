package service

import (
	"context"
	"errors"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/entity"
	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/pkg/mailer"
	"flou-backend/internal/pkg/serverutils"
	"flou-backend/internal/repository/contract"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/dialog"
	"flou-backend/pkg/events"
	pktNats "flou-backend/pkg/nats"
	"flou-backend/pkg/sessionstate"

	"github.com/google/uuid"
)

const defaultSessionTitle = "Nueva conversación"

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest, lang string) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionListItem, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest, lang string) (*dto.SendMessageResponse, error)
	GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit int) (*dto.MessageHistoryResponse, error)
	MessageFeedback(ctx context.Context, userId uuid.UUID, req *dto.MessageFeedbackRequest) error
	ClearSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ClearSessionResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	engine         *dialog.Engine
	natsPub        *pktNats.Publisher
	emailService   mailer.IEmailService
	alertrecipient string
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	engine *dialog.Engine,
	natsPub *pktNats.Publisher,
	emailService mailer.IEmailService,
	alertRecipient string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		engine:         engine,
		natsPub:        natsPub,
		emailService:   emailService,
		alertrecipient: alertRecipient,
		logger:         log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest, lang string) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	title := defaultSessionTitle
	if req != nil && req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	session := entity.ChatSession{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        title,
		IsActive:     true,
		CurrentState: sessionstate.New(),
		CreatedAt:    time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	greeting, quickReplies := dialog.Greeting(lang)
	welcome := entity.ChatMessage{
		ChatSessionId: session.Id,
		Sender:        entity.SenderAi,
		Content:       greeting,
		Metadata:      map[string]any{"quick_replies": quickReplies},
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id:             session.Id,
		Title:          session.Title,
		WelcomeMessage: greeting,
		CreatedAt:      session.CreatedAt,
	}, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.ActiveSessions{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		count, err := uow.ChatMessageRepository().Count(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.SessionListItem{
			Id:           session.Id,
			Title:        session.Title,
			IsActive:     session.IsActive,
			MessageCount: count,
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
		})
	}
	return result, nil
}

// SendMessage runs one conversational turn: persist the user message, load
// the continuity document, let the engine act, save the document back in
// full, then persist and return the AI reply.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest, lang string) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessionRepo := uow.ChatSessionRepository()
	messageRepo := uow.ChatMessageRepository()

	var session *entity.ChatSession
	var err error
	if req.SessionId != nil {
		session, err = sessionRepo.FindOne(ctx,
			specification.ByID{ID: *req.SessionId},
			specification.ByUserID{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, serverutils.NewNotFoundError("chat session not found")
		}
	} else {
		created, err := s.CreateSession(ctx, userId, nil, lang)
		if err != nil {
			return nil, err
		}
		session, err = sessionRepo.FindOne(ctx, specification.ByID{ID: created.Id})
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, errors.New("session vanished after creation")
		}
	}

	userMsg := entity.ChatMessage{
		ChatSessionId: session.Id,
		Sender:        entity.SenderUser,
		Content:       req.Content,
		CreatedAt:     time.Now(),
	}
	if err := messageRepo.Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	history, err := s.recentHistory(ctx, messageRepo, session.Id, userMsg.Id)
	if err != nil {
		return nil, err
	}

	store := uow.SessionStateStore()
	state, err := store.Load(ctx, session.Id)
	if err != nil {
		return nil, err
	}

	turn := s.engine.HandleUserTurn(ctx, dialog.TurnInput{
		Message: req.Content,
		Locale:  lang,
		State:   state,
		History: history,
	})

	if err := store.Save(ctx, session.Id, turn.State); err != nil {
		return nil, err
	}

	aiMeta := map[string]any{}
	for k, v := range turn.Metadata {
		aiMeta[k] = v
	}
	if len(turn.QuickReplies) > 0 {
		aiMeta["quick_replies"] = turn.QuickReplies
	}
	aiMsg := entity.ChatMessage{
		ChatSessionId: session.Id,
		Sender:        entity.SenderAi,
		Content:       turn.Reply,
		Metadata:      aiMeta,
		CreatedAt:     time.Now(),
	}
	if err := messageRepo.Create(ctx, &aiMsg); err != nil {
		return nil, err
	}

	s.logDecision(ctx, uow, userId, aiMsg.Id, turn)

	if turn.Decision == dialog.DecisionStrategyAccepted && s.natsPub != nil {
		strategyId := dialog.ParseSession(turn.State).LastStrategy
		if err := s.natsPub.Publish(ctx, events.NewStrategyAccepted(userId.String(), session.Id.String(), strategyId)); err != nil {
			s.logger.Warn("ChatService", "Failed to publish strategy event", map[string]interface{}{"error": err.Error()})
		}
	}

	if turn.Crisis {
		s.handleCrisis(ctx, userId, session.Id, turn.CrisisConfidence)
	}

	return &dto.SendMessageResponse{
		SessionId:    session.Id,
		MessageId:    aiMsg.Id,
		Reply:        turn.Reply,
		QuickReplies: turn.QuickReplies,
		Metadata:     turn.Metadata,
		Crisis:       turn.Crisis,
	}, nil
}

// recentHistory returns the last turns before the current user message,
// oldest first.
func (s *chatService) recentHistory(ctx context.Context, repo contract.ChatMessageRepository, sessionId uuid.UUID, excludeId int64) ([]dialog.HistoryEntry, error) {
	messages, err := repo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 11},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dialog.HistoryEntry, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Id == excludeId {
			continue
		}
		history = append(history, dialog.HistoryEntry{
			Sender:  string(messages[i].Sender),
			Content: messages[i].Content,
		})
	}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	return history, nil
}

func (s *chatService) logDecision(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, messageId int64, turn dialog.TurnResult) {
	parsed := dialog.ParseSession(turn.State)

	params := map[string]any{
		"decision":  turn.Decision,
		"iteration": parsed.Iteration,
		"phase":     parsed.ConversationPhase,
		"slots": map[string]any{
			"sentimiento":   parsed.Slots.Sentimiento,
			"tipo_tarea":    parsed.Slots.TipoTarea,
			"plazo":         parsed.Slots.Plazo,
			"fase":          parsed.Slots.Fase,
			"tiempo_bloque": parsed.Slots.TiempoBloque,
		},
	}

	logEntry := entity.AiDecisionLog{
		UserId:             userId,
		ChatMessageId:      messageId,
		DetectedParameters: params,
		CreatedAt:          time.Now(),
	}
	if parsed.LastStrategy != "" {
		strategyId := parsed.LastStrategy
		logEntry.AppliedStrategyId = &strategyId
	}
	if turn.Crisis {
		confidence := turn.CrisisConfidence
		logEntry.ConfidenceScore = &confidence
	}

	if err := uow.AiDecisionLogRepository().Create(ctx, &logEntry); err != nil {
		s.logger.Warn("ChatService", "Failed to write decision log", map[string]interface{}{"error": err.Error()})
	}
}

// handleCrisis fans out alerts with ids only, never chat content.
func (s *chatService) handleCrisis(ctx context.Context, userId, sessionId uuid.UUID, confidence float64) {
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewCrisisFlagged(userId.String(), sessionId.String(), confidence)); err != nil {
			s.logger.Error("ChatService", "Failed to publish crisis event", map[string]interface{}{"error": err.Error()})
		}
	}
	if s.emailService != nil && s.alertrecipient != "" {
		if err := s.emailService.SendCrisisAlert(s.alertrecipient, userId.String(), sessionId.String()); err != nil {
			s.logger.Error("ChatService", "Failed to send crisis alert email", map[string]interface{}{"error": err.Error()})
		}
	}
	s.logger.Warn("ChatService", "Crisis flagged in session", map[string]interface{}{
		"user_id":    userId,
		"session_id": sessionId,
		"confidence": confidence,
	})
}

func (s *chatService) GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit int) (*dto.MessageHistoryResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("chat session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageItem, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		items = append(items, dto.MessageItem{
			Id:        m.Id,
			Sender:    string(m.Sender),
			Content:   m.Content,
			Metadata:  m.Metadata,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.MessageHistoryResponse{
		SessionId: session.Id,
		Title:     session.Title,
		IsActive:  session.IsActive,
		Messages:  items,
	}, nil
}

func (s *chatService) MessageFeedback(ctx context.Context, userId uuid.UUID, req *dto.MessageFeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messageRepo := uow.ChatMessageRepository()

	message, err := messageRepo.FindOne(ctx, specification.FilterBy{Field: "id", Value: req.MessageId})
	if err != nil {
		return err
	}
	if message == nil {
		return serverutils.NewNotFoundError("message not found")
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: message.ChatSessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return serverutils.NewForbiddenError("message belongs to another user")
	}

	if message.Metadata == nil {
		message.Metadata = map[string]any{}
	}
	message.Metadata["feedback"] = req.Feedback
	return messageRepo.Update(ctx, message)
}

// ClearSession wipes the conversation and resets the continuity document to
// the empty default.
func (s *chatService) ClearSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ClearSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("chat session not found")
	}

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, sessionId); err != nil {
		return nil, err
	}
	if err := uow.SessionStateStore().Save(ctx, sessionId, sessionstate.New()); err != nil {
		return nil, err
	}

	return &dto.ClearSessionResponse{SessionId: sessionId, Cleared: true}, nil
}
