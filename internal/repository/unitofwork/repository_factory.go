package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. The two implementations
// (GORM-backed and in-memory) are interchangeable behind this interface.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
