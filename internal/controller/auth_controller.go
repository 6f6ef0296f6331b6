package controller

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/dto"
	"campusai-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")
	auth.Post("/register", c.Register)
	auth.Post("/login", c.Login)
	auth.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	result, err := c.authService.Register(ctx.UserContext(), &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusCreated, "Registered", result)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	result, err := c.authService.Login(ctx.UserContext(), &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, fiber.StatusOK, "Logged in", result)
}

// Logout is stateless: tokens are short-lived and the client discards its
// copy. The endpoint exists so the frontend has a single call for both.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ok(ctx, fiber.StatusOK, "Logged out", nil)
}
