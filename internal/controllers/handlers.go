package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"social_workspace/internal/repository"
	"social_workspace/internal/services"
)

const msgInvalidInput = "Invalid inputs passed, please check your data."

// Handlers groups the HTTP handlers and the services behind them.
type Handlers struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Follow     *services.FollowService
	Posts      *services.PostService
	Engagement *services.EngagementService
	Health     repository.Pinger

	// Timeout bounds the store work of a single request.
	Timeout time.Duration
}

func (h *Handlers) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	d := h.Timeout
	if d <= 0 {
		d = 5 * time.Second
	}
	return context.WithTimeout(c.UserContext(), d)
}

func invalidBody() error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, msgInvalidInput)
}
