package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
)

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type CommentResp struct {
	ID        bson.ObjectID `json:"id"`
	PostID    bson.ObjectID `json:"postId"`
	Creator   bson.ObjectID `json:"creator"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"createdAt"`
}

type AddCommentResp struct {
	Message string      `json:"message"`
	Comment CommentResp `json:"comment"`
}

type ListCommentsResp struct {
	Comments   []CommentResp `json:"comments"`
	NextCursor *string       `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

func NewCommentResp(c models.Comment) CommentResp {
	return CommentResp{
		ID:        c.ID,
		PostID:    c.PostID,
		Creator:   c.Creator,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
