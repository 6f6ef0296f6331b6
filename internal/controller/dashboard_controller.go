package controller

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/pkg/serverutils"
	"campusai-be/internal/service"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetWidgets(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{dashboardService: dashboardService}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	dashboard := r.Group("/dashboard", serverutils.JwtMiddleware)
	dashboard.Get("/widgets", c.GetWidgets)
}

func (c *dashboardController) GetWidgets(ctx *fiber.Ctx) error {
	kind := ctx.Query("kind")

	result, err := c.dashboardService.GetWidgets(ctx.UserContext(), kind)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusOK, "Widgets retrieved", result)
}
