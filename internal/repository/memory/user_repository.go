package memory

import (
	"context"

	"campusai-be/internal/entity"
	"campusai-be/internal/repository/contract"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.store.insertUser(user)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.userByName[username]
	if !ok {
		return nil, nil
	}
	user := r.store.users[id]
	return &user, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
