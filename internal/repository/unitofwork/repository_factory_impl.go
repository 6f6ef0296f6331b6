package unitofwork

import (
	"context"

	"campusai-be/internal/repository/memory"

	"gorm.io/gorm"
)

type gormFactory struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &gormFactory{db: db}
}

func (f *gormFactory) NewUnitOfWork(_ context.Context) UnitOfWork {
	return NewUnitOfWork(f.db)
}

type memoryFactory struct {
	store *memory.Store
}

func NewMemoryRepositoryFactory(store *memory.Store) RepositoryFactory {
	return &memoryFactory{store: store}
}

func (f *memoryFactory) NewUnitOfWork(_ context.Context) UnitOfWork {
	return NewMemoryUnitOfWork(f.store)
}
