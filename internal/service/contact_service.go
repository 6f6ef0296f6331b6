package service

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"campusai-be/internal/apperror"
	"campusai-be/internal/dto"
	"campusai-be/internal/entity"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/unitofwork"
	"campusai-be/pkg/events"
)

type IContactService interface {
	// Submit persists the contact message and publishes an event for the
	// mail consumer. Delivery failure does not fail the submission.
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	factory   unitofwork.RepositoryFactory
	publisher message.Publisher
	logger    logger.ILogger
}

func NewContactService(factory unitofwork.RepositoryFactory, publisher message.Publisher, log logger.ILogger) IContactService {
	return &contactService{
		factory:   factory,
		publisher: publisher,
		logger:    log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	contact := &entity.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := uow.ContactMessageRepository().Create(ctx, contact); err != nil {
		return nil, apperror.NewStorage("failed to store contact message", err)
	}

	event := events.ContactSubmittedEvent{
		ContactId: contact.Id,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
	}
	payload, err := event.Marshal()
	if err != nil {
		s.logger.Error("contact", "failed to marshal event", map[string]interface{}{"error": err.Error()})
		return &dto.ContactResponse{Id: contact.Id}, nil
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := s.publisher.Publish(events.TopicContactSubmitted, msg); err != nil {
		s.logger.Error("contact", "failed to publish event", map[string]interface{}{
			"contact_id": contact.Id,
			"error":      err.Error(),
		})
	}

	return &dto.ContactResponse{Id: contact.Id}, nil
}
