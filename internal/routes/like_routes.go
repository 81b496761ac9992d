package routes

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/token"
)

func LikeRoutes(api fiber.Router, h *controllers.Handlers, tm *token.Manager) {
	posts := api.Group("/posts")
	auth := middleware.Protected(tm)

	// POST /api/posts/like/:pid
	//   curl -X POST http://localhost:5000/api/posts/like/<pid> -H "Authorization: Bearer <token>"
	posts.Post("/like/:pid", with(auth, h.LikePost)...)
	posts.Post("/unlike/:pid", with(auth, h.UnlikePost)...)
}
