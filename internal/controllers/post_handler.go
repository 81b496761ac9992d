package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/middleware"
)

// CreatePost godoc
// @Summary      Create a post
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreatePostReq  true  "title and description"
// @Success      201   {object}  dto.CreatePostResp
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse "owner not found"
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *Handlers) CreatePost(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return invalidBody()
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	post, err := h.Posts.CreatePost(ctx, me, body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatePostResp{
		PostID:      post.ID,
		Title:       post.Title,
		Description: post.Description,
		CreatedTime: post.CreatedTime,
	})
}

// GetPost godoc
// @Summary      Get a post
// @Tags         Posts
// @Produce      json
// @Param        pid  path      string  true  "Post ID"
// @Success      200  {object}  dto.GetPostResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{pid} [get]
func (h *Handlers) GetPost(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	post, err := h.Posts.GetPost(ctx, c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(dto.GetPostResp{Post: dto.NewPostResp(*post)})
}

// ListMyPosts godoc
// @Summary      List my posts
// @Description  Posts owned by the caller, oldest first
// @Tags         Posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListPostsResp
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts/all [get]
func (h *Handlers) ListMyPosts(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	posts, err := h.Posts.ListPosts(ctx, me)
	if err != nil {
		return err
	}

	resp := dto.ListPostsResp{Posts: make([]dto.PostResp, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, dto.NewPostResp(p))
	}
	return c.JSON(resp)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         Posts
// @Produce      json
// @Security     BearerAuth
// @Param        pid  path      string  true  "Post ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse "not the owner"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{pid} [delete]
func (h *Handlers) DeletePost(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Posts.DeletePost(ctx, me, c.Params("pid")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Deleted Post."})
}
