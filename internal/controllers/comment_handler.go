package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/middleware"
	"social_workspace/internal/services"
)

// AddComment godoc
// @Summary      Comment on a post
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        pid   path      string                 true  "Post ID"
// @Param        body  body      dto.CreateCommentReq   true  "comment text"
// @Success      200   {object}  dto.AddCommentResp
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /posts/comment/{pid} [post]
func (h *Handlers) AddComment(c *fiber.Ctx) error {
	me, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return invalidBody()
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	com, err := h.Engagement.AddComment(ctx, me, c.Params("pid"), body)
	if err != nil {
		return err
	}
	return c.JSON(dto.AddCommentResp{
		Message: "Comment added.",
		Comment: dto.NewCommentResp(*com),
	})
}

// ListComments godoc
// @Summary      List comments of a post
// @Description  Oldest first, keyset paginated
// @Tags         Comments
// @Produce      json
// @Param        pid     path      string  true   "Post ID"
// @Param        limit   query     int     false  "page size (1-50, default 20)"
// @Param        cursor  query     string  false  "next_cursor of the previous page"
// @Success      200     {object}  dto.ListCommentsResp
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      422     {object}  dto.ErrorResponse "invalid cursor"
// @Router       /posts/{pid}/comments [get]
func (h *Handlers) ListComments(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	page, err := h.Engagement.ListComments(ctx,
		c.Params("pid"),
		c.Query("cursor"),
		c.QueryInt("limit", services.DefaultCommentsLimit),
	)
	if err != nil {
		return err
	}

	resp := dto.ListCommentsResp{
		Comments:   make([]dto.CommentResp, 0, len(page.Items)),
		NextCursor: page.NextCursor,
		HasMore:    page.NextCursor != nil,
	}
	for _, com := range page.Items {
		resp.Comments = append(resp.Comments, dto.NewCommentResp(com))
	}
	return c.JSON(resp)
}
