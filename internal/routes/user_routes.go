package routes

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/token"
)

func UserRoutes(api fiber.Router, h *controllers.Handlers, tm *token.Manager) {
	users := api.Group("/users")
	auth := middleware.Protected(tm)

	// POST /api/users/signup
	//   curl -X POST http://localhost:5000/api/users/signup \
	//     -H "Content-Type: application/json" -d '{"email":"a@x.com","password":"secret1"}'
	users.Post("/signup", h.Signup)

	// POST /api/users/login
	users.Post("/login", h.Login)

	// GET /api/users
	users.Get("/", h.ListUsers)

	// POST /api/users/follow/:uid
	//   curl -X POST http://localhost:5000/api/users/follow/<uid> -H "Authorization: Bearer <token>"
	users.Post("/follow/:uid", with(auth, h.FollowUser)...)
	users.Post("/unfollow/:uid", with(auth, h.UnfollowUser)...)
}
