package routes

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/token"
)

func PostRoutes(api fiber.Router, h *controllers.Handlers, tm *token.Manager) {
	posts := api.Group("/posts")
	auth := middleware.Protected(tm)

	// /all must be registered before /:pid
	//   curl http://localhost:5000/api/posts/all -H "Authorization: Bearer <token>"
	posts.Get("/all", with(auth, h.ListMyPosts)...)

	// POST /api/posts
	//   curl -X POST http://localhost:5000/api/posts -H "Authorization: Bearer <token>" \
	//     -H "Content-Type: application/json" -d '{"title":"Hi","description":"hello world"}'
	posts.Post("/", with(auth, h.CreatePost)...)

	posts.Get("/:pid", h.GetPost)
	posts.Delete("/:pid", with(auth, h.DeletePost)...)
}
