package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "social_workspace/docs"
	"social_workspace/internal/controllers"
	"social_workspace/internal/middleware"
	"social_workspace/internal/repository"
	"social_workspace/internal/routes"
	"social_workspace/internal/services"
	"social_workspace/internal/token"
)

type Deps struct {
	Store       *repository.Store
	Tokens      *token.Manager
	Logger      zerolog.Logger
	BcryptCost  int
	Timeout     time.Duration
	BodyLimit   int
	CORSOrigins string
}

// New builds the fiber app with every route and the error boundary.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "social_workspace",
		ErrorHandler:          controllers.ErrorHandler,
		BodyLimit:             d.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestLogger(d.Logger))
	app.Use(recover.New())

	origins := d.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.HeaderRequestID,
	}))

	h := &controllers.Handlers{
		Auth:       services.NewAuthService(d.Store.Users, d.Tokens, d.BcryptCost),
		Users:      services.NewUserService(d.Store.Users),
		Follow:     services.NewFollowService(d.Store.Users),
		Posts:      services.NewPostService(d.Store),
		Engagement: services.NewEngagementService(d.Store),
		Health:     d.Store.Health,
		Timeout:    d.Timeout,
	}

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", h.Healthz)

	routes.Register(app, h, d.Tokens)

	app.Use(controllers.NotFound)
	return app
}
