package routes

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/token"
)

func CommentRoutes(api fiber.Router, h *controllers.Handlers, tm *token.Manager) {
	posts := api.Group("/posts")
	auth := middleware.Protected(tm)

	// POST /api/posts/comment/:pid
	//   curl -X POST http://localhost:5000/api/posts/comment/<pid> -H "Authorization: Bearer <token>" \
	//     -H "Content-Type: application/json" -d '{"text":"nice"}'
	posts.Post("/comment/:pid", with(auth, h.AddComment)...)

	// GET /api/posts/:pid/comments?limit=20&cursor=...
	posts.Get("/:pid/comments", h.ListComments)
}
