package main

import (
	"os"

	"flou-backend/internal/model"
	"flou-backend/pkg/dialog"
	"flou-backend/pkg/embedding"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedStrategyEmbeddings embeds the strategy catalog documents for semantic
// retrieval. Skipped when no embedding provider is configured; the engine
// falls back to the rule-based cascade.
func SeedStrategyEmbeddings(db *gorm.DB) {
	color.Cyan("🌱 Seeding Strategy Embeddings...")

	var provider embedding.EmbeddingProvider
	if os.Getenv("EMBEDDING_PROVIDER") == "ollama" {
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		provider = embedding.NewOllamaProvider(baseURL, os.Getenv("OLLAMA_EMBEDDING_MODEL"))
	} else if key := os.Getenv("GOOGLE_GEMINI_API_KEY"); key != "" {
		provider = embedding.NewGeminiProvider(key)
	}

	if provider == nil {
		color.Yellow("No embedding provider configured, skipping strategy embeddings")
		return
	}

	for _, strategy := range dialog.Catalog() {
		doc := strategy.Document()

		res, err := provider.Generate(doc, "RETRIEVAL_DOCUMENT")
		if err != nil {
			color.Red("Error embedding strategy '%s': %v", strategy.ID, err)
			continue
		}

		row := model.StrategyEmbedding{
			StrategyId:     strategy.ID,
			Document:       doc,
			EmbeddingValue: pgvector.NewVector(res.Embedding.Values),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "strategy_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			color.Red("Error upserting strategy '%s': %v", strategy.ID, err)
		} else {
			color.Green("Embedded strategy: %s", strategy.ID)
		}
	}
}