package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
)

type CreatePostReq struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

type CreatePostResp struct {
	PostID      bson.ObjectID `json:"postId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatedTime time.Time     `json:"createdTime"`
}

type PostResp struct {
	ID          bson.ObjectID   `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Creator     bson.ObjectID   `json:"creator"`
	LikedBy     []bson.ObjectID `json:"likedby"`
	Comments    []bson.ObjectID `json:"comments"`
	CreatedTime time.Time       `json:"createdTime"`
}

type GetPostResp struct {
	Post PostResp `json:"post"`
}

type ListPostsResp struct {
	Posts []PostResp `json:"posts"`
}

func NewPostResp(p models.Post) PostResp {
	return PostResp{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Creator:     p.Creator,
		LikedBy:     orEmpty(p.LikedBy),
		Comments:    orEmpty(p.Comments),
		CreatedTime: p.CreatedTime,
	}
}
