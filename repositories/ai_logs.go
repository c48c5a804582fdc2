package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/ai/completion"
	"fleur-api/logger"
	"fleur-api/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Record implements completion.Recorder. Write failures are logged and
// swallowed so usage accounting never affects the request path.
func (r *AILogRepository) Record(ctx context.Context, log completion.RequestLog) {
	doc := models.AILog{
		ModelName:      log.ModelName,
		ModelVersion:   log.ModelVersion,
		InputTokens:    log.Usage.InputTokens,
		OutputTokens:   log.Usage.OutputTokens,
		TotalTokens:    log.Usage.TotalTokens,
		DurationMs:     log.CompletedAt.Sub(log.RequestedAt).Milliseconds(),
		InputPrompt:    log.InputPrompt,
		OutputResponse: log.Output,
		RequestedAt:    log.RequestedAt,
		CompletedAt:    log.CompletedAt,
	}
	if log.ErrorMessage != "" {
		msg := log.ErrorMessage
		doc.ErrorMessage = &msg
	}
	if _, err := r.Insert(ctx, doc); err != nil {
		logger.ErrorWithFields("failed to insert ai log", logger.Fields{
			"error": err.Error(),
			"model": log.ModelName,
		})
	}
}
