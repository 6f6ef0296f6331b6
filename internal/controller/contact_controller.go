package controller

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/dto"
	"campusai-be/internal/service"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{contactService: contactService}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "name, email, subject and message are required")
	}

	result, err := c.contactService.Submit(ctx.UserContext(), &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusCreated, "Message received", result)
}
