package contract

import (
	"context"

	"campusai-be/internal/entity"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// FindByToken returns (nil, nil) when the token is unknown; a stale
	// client-cached token is a routine outcome, not an error.
	FindByToken(ctx context.Context, token string) (*entity.ChatSession, error)
}
