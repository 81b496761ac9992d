package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	Creator   bson.ObjectID `json:"creator"   bson:"creator"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
