package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/middleware"
)

// LikePost godoc
// @Summary      Like a post
// @Tags         Likes
// @Produce      json
// @Security     BearerAuth
// @Param        pid  path      string  true  "Post ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "already liked"
// @Router       /posts/like/{pid} [post]
func (h *Handlers) LikePost(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Engagement.LikePost(ctx, me, c.Params("pid")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Liked."})
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Tags         Likes
// @Produce      json
// @Security     BearerAuth
// @Param        pid  path      string  true  "Post ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "not liked"
// @Router       /posts/unlike/{pid} [post]
func (h *Handlers) UnlikePost(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Engagement.UnlikePost(ctx, me, c.Params("pid")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Unliked."})
}
