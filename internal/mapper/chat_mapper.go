package mapper

import (
	"encoding/json"
	"time"

	"flou-backend/internal/entity"
	"flou-backend/internal/model"
	"flou-backend/pkg/sessionstate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	state := sessionstate.New()
	if len(s.CurrentState) > 0 {
		// A malformed column falls back to the empty document rather than
		// poisoning the whole read.
		if err := json.Unmarshal(s.CurrentState, &state); err != nil {
			state = sessionstate.New()
		}
	}

	return &entity.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		Title:        s.Title,
		IsActive:     s.IsActive,
		CurrentState: state,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    s.DeletedAt.Valid,
	}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	state := s.CurrentState
	if state == nil {
		state = sessionstate.New()
	}
	raw, err := json.Marshal(state)
	if err != nil {
		raw = []byte("{}")
	}

	return &model.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		Title:        s.Title,
		IsActive:     s.IsActive,
		CurrentState: datatypes.JSON(raw),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *ChatMapper) SessionsToEntities(sessions []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Sender:        entity.MessageSender(msg.Sender),
		Content:       msg.Content,
		Metadata:      jsonToMap(msg.Metadata),
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Sender:        string(msg.Sender),
		Content:       msg.Content,
		Metadata:      mapToJSON(msg.Metadata),
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, msg := range messages {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

// Decision Log Mappers

func (m *ChatMapper) DecisionLogToEntity(l *model.AiDecisionLog) *entity.AiDecisionLog {
	if l == nil {
		return nil
	}

	return &entity.AiDecisionLog{
		Id:                 l.Id,
		UserId:             l.UserId,
		ChatMessageId:      l.ChatMessageId,
		DetectedParameters: jsonToMap(l.DetectedParameters),
		AppliedStrategyId:  l.AppliedStrategyId,
		ConfidenceScore:    l.ConfidenceScore,
		CreatedAt:          l.CreatedAt,
	}
}

func (m *ChatMapper) DecisionLogToModel(l *entity.AiDecisionLog) *model.AiDecisionLog {
	if l == nil {
		return nil
	}

	return &model.AiDecisionLog{
		Id:                 l.Id,
		UserId:             l.UserId,
		ChatMessageId:      l.ChatMessageId,
		DetectedParameters: mapToJSON(l.DetectedParameters),
		AppliedStrategyId:  l.AppliedStrategyId,
		ConfidenceScore:    l.ConfidenceScore,
		CreatedAt:          l.CreatedAt,
	}
}
