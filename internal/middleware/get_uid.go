package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UIDFromLocals returns the user id set by the auth middleware.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals(LocalUserID).(string)
	if uid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, msgAuthFailed)
	}
	return uid, nil
}

func EmailFromLocals(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalEmail).(string)
	return email
}
