package entity

import (
	"time"

	"github.com/google/uuid"
)

type StrategyEmbedding struct {
	Id         uuid.UUID
	StrategyId string
	Document   string
	Embedding  []float32
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
