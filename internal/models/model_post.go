package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Title       string          `json:"title"       bson:"title"`
	Description string          `json:"description" bson:"description"`
	Creator     bson.ObjectID   `json:"creator"     bson:"creator"`
	LikedBy     []bson.ObjectID `json:"likedby"     bson:"likedby"`
	Comments    []bson.ObjectID `json:"comments"    bson:"comments"`
	CreatedTime time.Time       `json:"createdTime" bson:"created_time"`
}

func NewPost(creator bson.ObjectID, title, description string, now time.Time) *Post {
	return &Post{
		ID:          bson.NewObjectID(),
		Title:       title,
		Description: description,
		Creator:     creator,
		LikedBy:     []bson.ObjectID{},
		Comments:    []bson.ObjectID{},
		CreatedTime: now,
	}
}

func (p *Post) IsLikedBy(userID bson.ObjectID) bool {
	return containsID(p.LikedBy, userID)
}
