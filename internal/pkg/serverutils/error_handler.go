package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"campusai-be/internal/pkg/logger"
)

// NewErrorHandler builds the Fiber-level error handler. Controllers convert
// domain errors themselves; anything reaching here is either a Fiber routing
// error or an unexpected failure, so the payload stays generic.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error("server", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		})
	}
}
