package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai-be/internal/entity"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewChatSessionRepository(store)
	ctx := context.Background()

	session := &entity.ChatSession{SessionToken: "tok-1"}
	require.NoError(t, repo.Create(ctx, session))
	assert.Equal(t, 1, session.Id)

	found, err := repo.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.Id, found.Id)
	assert.Equal(t, "tok-1", found.SessionToken)
}

func TestSessionRepositoryUnknownTokenIsNilNil(t *testing.T) {
	repo := NewChatSessionRepository(NewStore())

	found, err := repo.FindByToken(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionIdsAreSequential(t *testing.T) {
	store := NewStore()
	repo := NewChatSessionRepository(store)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		session := &entity.ChatSession{SessionToken: fmt.Sprintf("tok-%d", i)}
		require.NoError(t, repo.Create(ctx, session))
		assert.Equal(t, i, session.Id)
	}
}

func TestMessageOrderingByCreatedAtThenId(t *testing.T) {
	store := NewStore()
	repo := NewChatMessageRepository(store)
	ctx := context.Background()

	now := time.Now()
	// Insert out of chronological order, with two equal timestamps.
	messages := []*entity.ChatMessage{
		{SessionId: 1, Role: entity.RoleUser, Message: "third", CreatedAt: now.Add(2 * time.Second)},
		{SessionId: 1, Role: entity.RoleAssistant, Message: "first", CreatedAt: now},
		{SessionId: 1, Role: entity.RoleAssistant, Message: "second", CreatedAt: now},
	}
	for _, m := range messages {
		require.NoError(t, repo.Create(ctx, m))
	}

	found, err := repo.FindAllBySessionId(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 3)

	// Equal timestamps fall back to insertion order via id.
	assert.Equal(t, "first", found[0].Message)
	assert.Equal(t, "second", found[1].Message)
	assert.Equal(t, "third", found[2].Message)
}

func TestMessagesAreScopedToSession(t *testing.T) {
	store := NewStore()
	repo := NewChatMessageRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.ChatMessage{SessionId: 1, Role: entity.RoleUser, Message: "mine"}))
	require.NoError(t, repo.Create(ctx, &entity.ChatMessage{SessionId: 2, Role: entity.RoleUser, Message: "other"}))

	found, err := repo.FindAllBySessionId(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "mine", found[0].Message)

	other, err := repo.FindAllBySessionId(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "other", other[0].Message)
}

func TestRepositoryReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewChatSessionRepository(store)
	ctx := context.Background()

	session := &entity.ChatSession{SessionToken: "tok-1"}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	found.SessionToken = "mutated"

	again, err := repo.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", again.SessionToken)
}
