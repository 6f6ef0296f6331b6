package bootstrap

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"campusai-be/internal/config"
	"campusai-be/internal/controller"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/pkg/mailer"
	"campusai-be/internal/repository/memory"
	"campusai-be/internal/repository/unitofwork"
	"campusai-be/internal/service"
	"campusai-be/pkg/chatbot"
	llmfactory "campusai-be/pkg/llm/factory"
)

// Container wires repositories, services and controllers by hand. One
// instance per process.
type Container struct {
	Config *config.Config
	Logger logger.ILogger

	ChatController      controller.IChatController
	FaqController       controller.IFaqController
	AuthController      controller.IAuthController
	ContactController   controller.IContactController
	DashboardController controller.IDashboardController

	ConsumerService *service.ConsumerService
}

// NewContainer builds the object graph. db may be nil when the storage
// driver is "memory".
func NewContainer(cfg *config.Config, log logger.ILogger, db *gorm.DB) (*Container, error) {
	var factory unitofwork.RepositoryFactory
	switch cfg.App.StorageDriver {
	case "memory":
		factory = unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres storage driver requires a database connection")
		}
		factory = unitofwork.NewRepositoryFactory(db)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.App.StorageDriver)
	}

	provider, err := llmfactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.OpenAI,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		return nil, err
	}

	generator := chatbot.NewGenerator(provider, log, chatbot.Config{
		MaxRetries:  cfg.Ai.MaxRetries,
		BackoffBase: time.Duration(cfg.Ai.BackoffBaseMs) * time.Millisecond,
		MaxTokens:   cfg.Ai.MaxTokens,
		Temperature: cfg.Ai.Temperature,
	})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	chatService := service.NewChatService(factory, generator, log)
	faqService := service.NewFaqService(factory)
	authService := service.NewAuthService(factory, cfg.App.JWTSecret, log)
	contactService := service.NewContactService(factory, pubSub, log)
	dashboardService := service.NewDashboardService(factory)
	consumerService := service.NewConsumerService(pubSub, emailService, cfg.App.ContactInbox, log)

	return &Container{
		Config:              cfg,
		Logger:              log,
		ChatController:      controller.NewChatController(chatService),
		FaqController:       controller.NewFaqController(faqService),
		AuthController:      controller.NewAuthController(authService),
		ContactController:   controller.NewContactController(contactService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ConsumerService:     consumerService,
	}, nil
}
