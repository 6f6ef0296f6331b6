package unitofwork

import (
	"context"

	"campusai-be/internal/repository/contract"
)

// UnitOfWork scopes repository access and an optional transaction. Session
// creation relies on Begin/Commit so the session row and both seed messages
// land atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	FaqRepository() contract.FaqRepository
	ContactMessageRepository() contract.ContactMessageRepository
	DashboardWidgetRepository() contract.DashboardWidgetRepository
}
