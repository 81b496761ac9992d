package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
)

// Healthz godoc
// @Summary      Liveness and store check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  dto.HealthResp
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /healthz [get]
func (h *Handlers) Healthz(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if h.Health != nil {
		if err := h.Health.Ping(ctx); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "store unavailable")
		}
	}
	return c.JSON(dto.HealthResp{Status: "ok"})
}
