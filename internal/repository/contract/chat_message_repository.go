package contract

import (
	"context"

	"campusai-be/internal/entity"
)

// ChatMessageRepository is append-only: messages are never updated or
// deleted once written.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindAllBySessionId returns the session's messages sorted ascending by
	// created_at, ties broken by id.
	FindAllBySessionId(ctx context.Context, sessionId int) ([]*entity.ChatMessage, error)
}
