package controller

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/service"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
	GetFaqs(ctx *fiber.Ctx) error
}

type faqController struct {
	faqService service.IFaqService
}

func NewFaqController(faqService service.IFaqService) IFaqController {
	return &faqController{faqService: faqService}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	r.Get("/faqs", c.GetFaqs)
}

func (c *faqController) GetFaqs(ctx *fiber.Ctx) error {
	category := ctx.Query("category")

	result, err := c.faqService.GetFaqs(ctx.UserContext(), category)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusOK, "FAQs retrieved", result)
}
