package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

const historyCollection = "history"

// HistoryRepository implements domain.HistoryRepository on a MongoDB
// collection. Insertion order is recovered by sorting on _id.
type HistoryRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(client *mongo.Client, database string) *HistoryRepository {
	return &HistoryRepository{col: client.Database(database).Collection(historyCollection)}
}

// Append stores a single message for a session.
func (r *HistoryRepository) Append(ctx context.Context, sessionID string, role domain.MessageRole, content string) error {
	doc := domain.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListBySession returns all messages for a session in insertion order.
func (r *HistoryRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// Clear deletes all messages for a session. Clearing a session with no
// messages is a no-op.
func (r *HistoryRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"session_id": sessionID}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
