package unitofwork

import (
	"context"
	"fmt"

	"campusai-be/internal/repository/contract"
	"campusai-be/internal/repository/memory"
)

// MemoryUnitOfWork adapts the in-memory store to the UnitOfWork contract.
// Begin/Commit are bookkeeping only: in-memory writes are applied directly
// and cannot fail between two inserts, so the atomicity the relational
// variant gets from a transaction holds here by construction.
type MemoryUnitOfWork struct {
	store   *memory.Store
	started bool
}

func NewMemoryUnitOfWork(store *memory.Store) UnitOfWork {
	return &MemoryUnitOfWork{store: store}
}

func (u *MemoryUnitOfWork) Begin(_ context.Context) error {
	if u.started {
		return fmt.Errorf("transaction already started")
	}
	u.started = true
	return nil
}

func (u *MemoryUnitOfWork) Commit() error {
	if !u.started {
		return fmt.Errorf("no transaction to commit")
	}
	u.started = false
	return nil
}

func (u *MemoryUnitOfWork) Rollback() error {
	if !u.started {
		return fmt.Errorf("no transaction to rollback")
	}
	u.started = false
	return nil
}

func (u *MemoryUnitOfWork) UserRepository() contract.UserRepository {
	return memory.NewUserRepository(u.store)
}

func (u *MemoryUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return memory.NewChatSessionRepository(u.store)
}

func (u *MemoryUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return memory.NewChatMessageRepository(u.store)
}

func (u *MemoryUnitOfWork) FaqRepository() contract.FaqRepository {
	return memory.NewFaqRepository(u.store)
}

func (u *MemoryUnitOfWork) ContactMessageRepository() contract.ContactMessageRepository {
	return memory.NewContactMessageRepository(u.store)
}

func (u *MemoryUnitOfWork) DashboardWidgetRepository() contract.DashboardWidgetRepository {
	return memory.NewDashboardWidgetRepository(u.store)
}
