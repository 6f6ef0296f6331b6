package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware rejects requests without a valid Bearer token and stores the
// user id in Locals("user_id").
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearerToken(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusUnauthorized,
			"message": "Missing or invalid token",
		})
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// OptionalJwtMiddleware populates Locals("user_id") when a valid token is
// present but lets anonymous requests through. Chat sessions accept both.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if claims, ok := parseBearerToken(ctx); ok {
		ctx.Locals("user_id", claims["user_id"])
	}
	return ctx.Next()
}

func parseBearerToken(ctx *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// UserIdFromLocals converts the claim stored by the middlewares back to an
// int. JWT numbers decode as float64.
func UserIdFromLocals(ctx *fiber.Ctx) (int, bool) {
	switch v := ctx.Locals("user_id").(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
