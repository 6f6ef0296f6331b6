package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusai-be/internal/apperror"
	"campusai-be/internal/constant"
	"campusai-be/internal/dto"
	"campusai-be/internal/entity"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/unitofwork"
	"campusai-be/pkg/chatbot"
	"campusai-be/pkg/llm"
)

type IChatService interface {
	// CreateSession opens a new session, seeded with the two assistant
	// welcome messages. ownerUserId is nil for anonymous visitors.
	CreateSession(ctx context.Context, ownerUserId *int) (*dto.CreateSessionResponse, error)
	GetMessages(ctx context.Context, token string) (*dto.SessionMessagesResponse, error)
	SendMessage(ctx context.Context, token, message string) (*dto.SendMessageResponse, error)
}

type chatService struct {
	factory   unitofwork.RepositoryFactory
	generator *chatbot.Generator
	logger    logger.ILogger
}

func NewChatService(factory unitofwork.RepositoryFactory, generator *chatbot.Generator, log logger.ILogger) IChatService {
	return &chatService{
		factory:   factory,
		generator: generator,
		logger:    log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, ownerUserId *int) (*dto.CreateSessionResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	// A valid token for a since-deleted account still opens a session, just
	// an anonymous one.
	if ownerUserId != nil {
		owner, err := uow.UserRepository().FindByID(ctx, *ownerUserId)
		if err != nil {
			return nil, apperror.NewStorage("failed to look up session owner", err)
		}
		if owner == nil {
			ownerUserId = nil
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewStorage("failed to open session transaction", err)
	}

	session := &entity.ChatSession{
		SessionToken: uuid.NewString(),
		UserId:       ownerUserId,
		CreatedAt:    time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		_ = uow.Rollback()
		return nil, apperror.NewStorage("failed to create chat session", err)
	}

	// Both seeds are assistant turns sharing one timestamp; the id
	// tie-break in FindAllBySessionId keeps the greeting first. A future
	// timestamp would sort messages posted within that window ahead of
	// the second seed.
	now := time.Now()
	seeds := []*entity.ChatMessage{
		{SessionId: session.Id, Role: entity.RoleAssistant, Message: constant.ChatGreetingMessage, CreatedAt: now},
		{SessionId: session.Id, Role: entity.RoleAssistant, Message: constant.ChatTopicMenuMessage, CreatedAt: now},
	}
	for _, seed := range seeds {
		if err := uow.ChatMessageRepository().Create(ctx, seed); err != nil {
			_ = uow.Rollback()
			return nil, apperror.NewStorage("failed to seed chat session", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewStorage("failed to commit chat session", err)
	}

	s.logger.Info("chat", "session created", map[string]interface{}{
		"session_id": session.Id,
		"anonymous":  ownerUserId == nil,
	})

	return &dto.CreateSessionResponse{
		Token:    session.SessionToken,
		Messages: toMessageResponses(seeds),
	}, nil
}

func (s *chatService) GetMessages(ctx context.Context, token string) (*dto.SessionMessagesResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	session, err := s.resolveSession(ctx, uow, token)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAllBySessionId(ctx, session.Id)
	if err != nil {
		return nil, apperror.NewStorage("failed to load chat messages", err)
	}

	return &dto.SessionMessagesResponse{
		Token:    session.SessionToken,
		Messages: toMessageResponses(messages),
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, token, message string) (*dto.SendMessageResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperror.NewValidation("message must not be empty")
	}

	uow := s.factory.NewUnitOfWork(ctx)

	session, err := s.resolveSession(ctx, uow, token)
	if err != nil {
		return nil, err
	}

	userTurn := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      entity.RoleUser,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userTurn); err != nil {
		return nil, apperror.NewStorage("failed to store user message", err)
	}

	history, err := uow.ChatMessageRepository().FindAllBySessionId(ctx, session.Id)
	if err != nil {
		return nil, apperror.NewStorage("failed to load chat history", err)
	}

	reply := s.generator.Generate(ctx, toLLMHistory(history))

	// The reply exists and has been promised to the client, so its persistence
	// must not die with a cancelled request context.
	assistantTurn := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      entity.RoleAssistant,
		Message:   reply,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(context.Background(), assistantTurn); err != nil {
		return nil, apperror.NewStorage("failed to store assistant message", err)
	}

	return &dto.SendMessageResponse{
		UserMessage: toMessageResponse(userTurn),
		BotMessage:  toMessageResponse(assistantTurn),
	}, nil
}

func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, token string) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindByToken(ctx, token)
	if err != nil {
		return nil, apperror.NewStorage("failed to look up chat session", err)
	}
	if session == nil {
		return nil, apperror.NewNotFound("chat session not found")
	}
	return session, nil
}

// toLLMHistory keeps user and assistant turns only. The system prompt is the
// generator's concern.
func toLLMHistory(messages []*entity.ChatMessage) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role != entity.RoleUser && m.Role != entity.RoleAssistant {
			continue
		}
		history = append(history, llm.Message{
			Role:    m.Role.String(),
			Content: m.Message,
		})
	}
	return history
}

func toMessageResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role.String(),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageResponses(messages []*entity.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return out
}
