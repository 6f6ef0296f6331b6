package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai-be/internal/apperror"
	"campusai-be/internal/constant"
	"campusai-be/internal/entity"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/memory"
	"campusai-be/internal/repository/unitofwork"
	"campusai-be/pkg/chatbot"
	"campusai-be/pkg/llm"
)

// stubProvider answers every call with the same reply, or fails when err is
// set.
type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply, s.err
}

func newTestChatService(provider llm.LLMProvider) IChatService {
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	generator := chatbot.NewGenerator(provider, logger.NewNopLogger(), chatbot.Config{
		MaxRetries:  0,
		BackoffBase: time.Millisecond,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	return NewChatService(factory, generator, logger.NewNopLogger())
}

func TestCreateSessionSeedsWelcomeMessages(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	session, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	require.Len(t, session.Messages, 2)
	assert.Equal(t, "assistant", session.Messages[0].Role)
	assert.Equal(t, constant.ChatGreetingMessage, session.Messages[0].Message)
	assert.Equal(t, "assistant", session.Messages[1].Role)
	assert.Equal(t, constant.ChatTopicMenuMessage, session.Messages[1].Message)
}

func TestCreateSessionOwnerAttribution(t *testing.T) {
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	generator := chatbot.NewGenerator(&stubProvider{reply: "ok"}, logger.NewNopLogger(), chatbot.Config{
		MaxRetries:  0,
		BackoffBase: time.Millisecond,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	svc := NewChatService(factory, generator, logger.NewNopLogger())
	ctx := context.Background()

	owner := &entity.User{Username: "student1", PasswordHash: "x"}
	require.NoError(t, factory.NewUnitOfWork(ctx).UserRepository().Create(ctx, owner))

	t.Run("existing owner is recorded", func(t *testing.T) {
		created, err := svc.CreateSession(ctx, &owner.Id)
		require.NoError(t, err)

		session, err := factory.NewUnitOfWork(ctx).ChatSessionRepository().FindByToken(ctx, created.Token)
		require.NoError(t, err)
		require.NotNil(t, session)
		require.NotNil(t, session.UserId)
		assert.Equal(t, owner.Id, *session.UserId)
	})

	t.Run("unknown owner falls back to anonymous", func(t *testing.T) {
		ghost := owner.Id + 100
		created, err := svc.CreateSession(ctx, &ghost)
		require.NoError(t, err)

		session, err := factory.NewUnitOfWork(ctx).ChatSessionRepository().FindByToken(ctx, created.Token)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Nil(t, session.UserId)
	})
}

func TestCreateSessionTokensAreUnique(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	first, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	second, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestGetMessagesUnknownToken(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	_, err := svc.GetMessages(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSendMessageAppendsBothTurns(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "The fall deadline is May 1st."})

	session, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	result, err := svc.SendMessage(context.Background(), session.Token, "When is the deadline?")
	require.NoError(t, err)

	assert.Equal(t, "user", result.UserMessage.Role)
	assert.Equal(t, "When is the deadline?", result.UserMessage.Message)
	assert.Equal(t, "assistant", result.BotMessage.Role)
	assert.Equal(t, "The fall deadline is May 1st.", result.BotMessage.Message)

	// Two seeds plus the new exchange, oldest first.
	log, err := svc.GetMessages(context.Background(), session.Token)
	require.NoError(t, err)
	require.Len(t, log.Messages, 4)
	assert.Equal(t, "When is the deadline?", log.Messages[2].Message)
	assert.Equal(t, "The fall deadline is May 1st.", log.Messages[3].Message)
}

func TestSendMessageRightAfterCreateKeepsSeedOrder(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	// No delay between creation and the first message: the seeds must
	// still list first even when all four rows share near-identical
	// timestamps.
	session, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), session.Token, "hello there")
	require.NoError(t, err)

	log, err := svc.GetMessages(context.Background(), session.Token)
	require.NoError(t, err)
	require.Len(t, log.Messages, 4)
	assert.Equal(t, constant.ChatGreetingMessage, log.Messages[0].Message)
	assert.Equal(t, constant.ChatTopicMenuMessage, log.Messages[1].Message)
	assert.Equal(t, "hello there", log.Messages[2].Message)
	assert.Equal(t, "ok", log.Messages[3].Message)
}

func TestSendMessageEmptyIsRejected(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	session, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.SendMessage(context.Background(), session.Token, msg)
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	}

	// Rejected input leaves the log untouched.
	log, err := svc.GetMessages(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Len(t, log.Messages, 2)
}

func TestSendMessageUnknownToken(t *testing.T) {
	svc := newTestChatService(&stubProvider{reply: "ok"})

	_, err := svc.SendMessage(context.Background(), "no-such-token", "hello")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSendMessageProviderFailureStillAnswers(t *testing.T) {
	svc := newTestChatService(&stubProvider{err: &llm.StatusError{StatusCode: 500, Body: "down"}})

	session, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	result, err := svc.SendMessage(context.Background(), session.Token, "how much is tuition")
	require.NoError(t, err)

	// Keyword fallback answers when the model is down.
	assert.Contains(t, result.BotMessage.Message, "Tuition fees vary by program")
}
