package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"flou-backend/internal/model"
	"flou-backend/pkg/sessionstate"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionStateStoreImpl persists the per-session continuity document in the
// current_state column of chat_sessions.
type SessionStateStoreImpl struct {
	db *gorm.DB
}

func NewSessionStateStore(db *gorm.DB) sessionstate.Store {
	return &SessionStateStoreImpl{db: db}
}

func (s *SessionStateStoreImpl) Load(ctx context.Context, sessionID uuid.UUID) (sessionstate.State, error) {
	var raw datatypes.JSON
	err := s.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Select("current_state").
		Where("id = ?", sessionID).
		Take(&raw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessionstate.ErrSessionNotFound
		}
		return nil, &sessionstate.TransientError{Op: "load", Err: err}
	}

	state := sessionstate.New()
	if len(raw) == 0 {
		return state, nil
	}
	// A corrupted column yields the empty document so the conversation can
	// restart instead of hard-failing every turn.
	if err := json.Unmarshal(raw, &state); err != nil {
		return sessionstate.New(), nil
	}
	if state == nil {
		state = sessionstate.New()
	}
	return state, nil
}

func (s *SessionStateStoreImpl) Save(ctx context.Context, sessionID uuid.UUID, state sessionstate.State) error {
	if state == nil {
		state = sessionstate.New()
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return &sessionstate.ValidationError{Reason: "state is not serializable to JSON", Err: err}
	}

	res := s.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("id = ?", sessionID).
		Update("current_state", datatypes.JSON(raw))
	if res.Error != nil {
		return &sessionstate.TransientError{Op: "save", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return sessionstate.ErrSessionNotFound
	}
	return nil
}
