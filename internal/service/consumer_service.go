package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/pkg/mailer"
	"campusai-be/pkg/events"
)

// ConsumerService drains contact events and forwards them to the staff inbox.
type ConsumerService struct {
	subscriber   message.Subscriber
	emailService mailer.IEmailService
	contactInbox string
	logger       logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, emailService mailer.IEmailService, contactInbox string, log logger.ILogger) *ConsumerService {
	return &ConsumerService{
		subscriber:   subscriber,
		emailService: emailService,
		contactInbox: contactInbox,
		logger:       log,
	}
}

// Start subscribes and processes until ctx is cancelled. Run it in its own
// goroutine.
func (s *ConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, events.TopicContactSubmitted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(msg)
		}
	}()
	return nil
}

func (s *ConsumerService) handle(msg *message.Message) {
	// Always ack: the contact message itself is already persisted, so a
	// failed mail is logged rather than retried forever.
	defer msg.Ack()

	event, err := events.UnmarshalContactSubmitted(msg.Payload)
	if err != nil {
		s.logger.Error("consumer", "malformed contact event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if err := s.emailService.SendContactNotification(
		s.contactInbox, event.Name, event.Email, event.Subject, event.Message,
	); err != nil {
		s.logger.Error("consumer", "failed to deliver contact mail", map[string]interface{}{
			"contact_id": event.ContactId,
			"error":      err.Error(),
		})
		return
	}

	s.logger.Info("consumer", "contact mail delivered", map[string]interface{}{
		"contact_id": event.ContactId,
	})
}
