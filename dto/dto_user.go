package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
)

type SignupReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type SignupResp struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type LoginResp struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// UserResp is the public projection of a user; it has no password field.
type UserResp struct {
	ID        bson.ObjectID   `json:"id"`
	Email     string          `json:"email"`
	Posts     []bson.ObjectID `json:"posts"`
	Followers []bson.ObjectID `json:"followers"`
	Following []bson.ObjectID `json:"following"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ListUsersResp struct {
	Users []UserResp `json:"users"`
}

func NewUserResp(u models.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		Posts:     orEmpty(u.Posts),
		Followers: orEmpty(u.Followers),
		Following: orEmpty(u.Following),
		CreatedAt: u.CreatedAt,
	}
}

type WhoAmIResp struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

func orEmpty(ids []bson.ObjectID) []bson.ObjectID {
	if ids == nil {
		return []bson.ObjectID{}
	}
	return ids
}
