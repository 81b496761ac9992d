package routes

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/token"
)

// Register mounts all HTTP routes under /api.
func Register(app *fiber.App, h *controllers.Handlers, tm *token.Manager) {
	api := app.Group("/api")

	// GET /api/whoami
	//   curl http://localhost:5000/api/whoami -H "Authorization: Bearer <token>"
	api.Get("/whoami", middleware.JWTUidOnly(tm), h.WhoAmI)

	UserRoutes(api, h, tm)
	PostRoutes(api, h, tm)
	LikeRoutes(api, h, tm)
	CommentRoutes(api, h, tm)
}

func with(guard []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guard)+1)
	out = append(out, guard...)
	return append(out, h)
}
