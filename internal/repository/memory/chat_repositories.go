package memory

import (
	"context"
	"sort"

	"campusai-be/internal/entity"
	"campusai-be/internal/repository/contract"
)

type ChatSessionRepository struct {
	store *Store
}

func NewChatSessionRepository(store *Store) contract.ChatSessionRepository {
	return &ChatSessionRepository{store: store}
}

func (r *ChatSessionRepository) Create(_ context.Context, session *entity.ChatSession) error {
	r.store.insertSession(session)
	return nil
}

func (r *ChatSessionRepository) FindByToken(_ context.Context, token string) (*entity.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.sessionByToken[token]
	if !ok {
		return nil, nil
	}
	session := r.store.sessions[id]
	return &session, nil
}

type ChatMessageRepository struct {
	store *Store
}

func NewChatMessageRepository(store *Store) contract.ChatMessageRepository {
	return &ChatMessageRepository{store: store}
}

func (r *ChatMessageRepository) Create(_ context.Context, message *entity.ChatMessage) error {
	r.store.insertMessage(message)
	return nil
}

func (r *ChatMessageRepository) FindAllBySessionId(_ context.Context, sessionId int) ([]*entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.ChatMessage
	for i := range r.store.messages {
		if r.store.messages[i].SessionId == sessionId {
			msg := r.store.messages[i]
			result = append(result, &msg)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].Id < result[j].Id
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
