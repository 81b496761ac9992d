package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"social_workspace/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags each request with an id, puts a child logger in the
// user context and logs the outcome. Errors are rendered here through the
// app's ErrorHandler so the logged status is the one the client gets.
func RequestLogger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := base.With().
			Str(logger.FieldRequestID, reqID).
			Str(logger.FieldMethod, c.Method()).
			Str(logger.FieldPath, c.Path()).
			Str(logger.FieldClientIP, c.IP()).
			Logger()

		c.Set(HeaderRequestID, reqID)
		c.SetUserContext(logger.WithLogger(c.UserContext(), child))

		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := child.Info()
		if status >= fiber.StatusInternalServerError {
			evt = child.Error()
		}
		evt = evt.
			Int(logger.FieldStatus, status).
			Float64(logger.FieldLatency, float64(time.Since(start).Milliseconds()))
		if uid, ok := c.Locals(LocalUserID).(string); ok && uid != "" {
			evt = evt.Str(logger.FieldUserID, uid)
		}
		evt.Msg("request completed")
		return nil
	}
}
