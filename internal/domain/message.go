package domain

import (
	"context"
	"time"
)

// MessageRole represents the sender of a message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single chat message within a session
type Message struct {
	ID        string      `json:"id" bson:"id"`
	SessionID string      `json:"session_id" bson:"session_id"`
	Role      MessageRole `json:"role" bson:"role"`
	Content   string      `json:"content" bson:"content"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// HistoryRepository defines the interface for per-session message storage.
// Messages are append-only and returned in insertion order.
type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, role MessageRole, content string) error
	ListBySession(ctx context.Context, sessionID string) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
}
