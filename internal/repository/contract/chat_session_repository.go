package contract

import (
	"context"

	"flou-backend/internal/entity"
	"flou-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateCurrentState overwrites the continuity document in a single UPDATE
	// and reports how many rows were touched. Zero rows means the session does
	// not exist.
	UpdateCurrentState(ctx context.Context, id uuid.UUID, raw []byte) (int64, error)
}
