package controller

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/dto"
	"campusai-be/internal/pkg/serverutils"
	"campusai-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	chat := r.Group("/chat")
	chat.Post("/session", serverutils.OptionalJwtMiddleware, c.CreateSession)
	chat.Get("/:sessionToken/messages", c.GetMessages)
	chat.Post("/:sessionToken/message", c.SendMessage)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var ownerUserId *int
	if id, ok := serverutils.UserIdFromLocals(ctx); ok {
		ownerUserId = &id
	}

	result, err := c.chatService.CreateSession(ctx.UserContext(), ownerUserId)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusCreated, "Session created", result)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	token := ctx.Params("sessionToken")

	result, err := c.chatService.GetMessages(ctx.UserContext(), token)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusOK, "Messages retrieved", result)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	token := ctx.Params("sessionToken")

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "message must not be empty")
	}

	result, err := c.chatService.SendMessage(ctx.UserContext(), token, req.Message)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusOK, "Message sent", result)
}
