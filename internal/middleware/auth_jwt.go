package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/token"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

const (
	msgAuthFailed   = "Authentication failed!"
	msgTokenExpired = "Token expired."
)

// JWTUidOnly verifies an optional bearer token. Requests without an
// Authorization header pass through anonymously; a header that is present
// but malformed, forged or expired is rejected with 401.
func JWTUidOnly(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" {
			return c.Next()
		}

		tokenStr, ok := bearerToken(auth)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, msgAuthFailed)
		}

		claims, err := tm.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				return fiber.NewError(fiber.StatusUnauthorized, msgTokenExpired)
			}
			return fiber.NewError(fiber.StatusUnauthorized, msgAuthFailed)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// Protected is the gate for routes that need an identity.
func Protected(tm *token.Manager) []fiber.Handler {
	return []fiber.Handler{JWTUidOnly(tm), RequireAuth()}
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}
