package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects the request unless JWTUidOnly stored a user id.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, ok := c.Locals(LocalUserID).(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, msgAuthFailed)
		}
		return c.Next()
	}
}
