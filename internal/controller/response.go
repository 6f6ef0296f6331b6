package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/apperror"
)

var validate = validator.New()

func ok(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"code":    status,
		"message": message,
		"data":    data,
	})
}

func fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": message,
	})
}

// failFromError maps a service error onto the response envelope via its
// apperror kind.
func failFromError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = fiber.StatusBadRequest
	case apperror.KindNotFound:
		status = fiber.StatusNotFound
	}
	return fail(ctx, status, apperror.MessageOf(err))
}
