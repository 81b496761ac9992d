package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/middleware"
)

// ListUsers godoc
// @Summary      List users
// @Description  Returns every user without password data
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dto.ListUsersResp
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users [get]
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return err
	}

	resp := dto.ListUsersResp{Users: make([]dto.UserResp, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, dto.NewUserResp(u))
	}
	return c.JSON(resp)
}

// FollowUser godoc
// @Summary      Follow a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User ID to follow"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse "cannot follow yourself"
// @Router       /users/follow/{uid} [post]
func (h *Handlers) FollowUser(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Follow.Follow(ctx, me, c.Params("uid")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Followed."})
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User ID to unfollow"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/unfollow/{uid} [post]
func (h *Handlers) UnfollowUser(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Follow.Unfollow(ctx, me, c.Params("uid")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Unfollowed."})
}

// WhoAmI echoes the identity recovered from the bearer token, if any.
func (h *Handlers) WhoAmI(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)
	return c.JSON(dto.WhoAmIResp{
		UserID: uid,
		Email:  middleware.EmailFromLocals(c),
	})
}
