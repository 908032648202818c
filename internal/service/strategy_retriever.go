package service

import (
	"context"
	"fmt"
	"time"

	"flou-backend/internal/pkg/logger"
	"flou-backend/internal/repository/unitofwork"
	"flou-backend/pkg/dialog"
	"flou-backend/pkg/embedding"

	gocache "github.com/patrickmn/go-cache"
)

const (
	retrievalLimit     = 10
	retrievalThreshold = 0.3
)

// strategyRetriever ranks strategy candidates by semantic similarity between
// the user's situation and the seeded strategy documents. Query embeddings
// are cached so repeated short messages ("no sé", "ayuda") skip the provider.
type strategyRetriever struct {
	uowFactory unitofwork.RepositoryFactory
	provider   embedding.EmbeddingProvider
	queryCache *gocache.Cache
	logger     logger.ILogger
}

func NewStrategyRetriever(uowFactory unitofwork.RepositoryFactory, provider embedding.EmbeddingProvider, log logger.ILogger) dialog.Retriever {
	return &strategyRetriever{
		uowFactory: uowFactory,
		provider:   provider,
		queryCache: gocache.New(30*time.Minute, 1*time.Hour),
		logger:     log,
	}
}

func (r *strategyRetriever) embedQuery(query string) ([]float32, error) {
	if cached, found := r.queryCache.Get(query); found {
		return cached.([]float32), nil
	}

	res, err := r.provider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}
	r.queryCache.Set(query, res.Embedding.Values, gocache.DefaultExpiration)
	return res.Embedding.Values, nil
}

// Rank returns candidateIDs reordered by descending similarity to the query.
// Candidates the search does not surface keep their original relative order at
// the tail, so a thin index never hides a valid strategy.
func (r *strategyRetriever) Rank(ctx context.Context, query string, candidateIDs []string) ([]string, error) {
	if len(candidateIDs) < 2 {
		return candidateIDs, nil
	}

	vector, err := r.embedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.StrategyEmbeddingRepository().SearchSimilar(ctx, vector, retrievalLimit, retrievalThreshold)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	allowed := make(map[string]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		allowed[id] = true
	}

	ranked := make([]string, 0, len(candidateIDs))
	seen := make(map[string]bool, len(candidateIDs))
	for _, hit := range scored {
		id := hit.Strategy.StrategyId
		if allowed[id] && !seen[id] {
			ranked = append(ranked, id)
			seen[id] = true
		}
	}
	for _, id := range candidateIDs {
		if !seen[id] {
			ranked = append(ranked, id)
			seen[id] = true
		}
	}

	r.logger.Info("StrategyRetriever", "Ranked strategy candidates", map[string]interface{}{
		"candidates": len(candidateIDs),
		"hits":       len(scored),
	})
	return ranked, nil
}