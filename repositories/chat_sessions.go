package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleur-api/ai/completion"
	"fleur-api/models"
)

// ChatSessionRepository persists conversation transcripts. It implements
// conversation.SessionStore.
type ChatSessionRepository struct {
	col *mongo.Collection
}

func NewChatSessionRepository(db *mongo.Database) *ChatSessionRepository {
	return &ChatSessionRepository{col: db.Collection("chat_history")}
}

func (r *ChatSessionRepository) Get(ctx context.Context, sessionID string) ([]completion.Turn, error) {
	var s models.ChatSession
	err := r.col.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	turns := make([]completion.Turn, 0, len(s.Turns))
	for _, t := range s.Turns {
		turns = append(turns, completion.Turn{Role: t.Role, Text: t.Text})
	}
	return turns, nil
}

// Append pushes turns onto the session transcript, creating the session
// document on first write. Concurrent appends to one session are
// last-write-wins, which is acceptable for human-paced chat.
func (r *ChatSessionRepository) Append(ctx context.Context, sessionID, userID string, turns ...completion.Turn) error {
	now := time.Now()
	docs := make([]models.ChatTurn, 0, len(turns))
	for _, t := range turns {
		docs = append(docs, models.ChatTurn{Role: t.Role, Text: t.Text, CreatedAt: now})
	}

	setOnInsert := bson.M{"created_at": now}
	if userID != "" {
		setOnInsert["user_id"] = userID
	}
	update := bson.M{
		"$setOnInsert": setOnInsert,
		"$push":        bson.M{"turns": bson.M{"$each": docs}},
		"$set":         bson.M{"updated_at": now},
	}
	_, err := r.col.UpdateByID(ctx, sessionID, update, options.Update().SetUpsert(true))
	return err
}
