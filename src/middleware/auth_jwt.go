package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"formbuilder-backend/src/utils"
)

// AuthJWT resolves the caller's identity from the Bearer token and stores
// it in locals. Everything below the controllers receives the identity
// explicitly, never from ambient state.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	if blacklisted, err := utils.IsTokenBlacklisted(tokenStr); err == nil && blacklisted {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been revoked"})
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)

	return c.Next()
}
