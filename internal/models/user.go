package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the identity record. Password holds the bcrypt hash and is never
// serialised to JSON.
type User struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Email     string          `json:"email"     bson:"email"`
	Password  string          `json:"-"         bson:"password"`
	Posts     []bson.ObjectID `json:"posts"     bson:"posts"`
	Followers []bson.ObjectID `json:"followers" bson:"followers"`
	Following []bson.ObjectID `json:"following" bson:"following"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
}

// NewUser returns a user with empty relationship sets so the stored
// document carries arrays instead of nulls.
func NewUser(email, passwordHash string, now time.Time) *User {
	return &User{
		ID:        bson.NewObjectID(),
		Email:     email,
		Password:  passwordHash,
		Posts:     []bson.ObjectID{},
		Followers: []bson.ObjectID{},
		Following: []bson.ObjectID{},
		CreatedAt: now,
	}
}

func (u *User) OwnsPost(postID bson.ObjectID) bool {
	return containsID(u.Posts, postID)
}

func (u *User) IsFollowing(userID bson.ObjectID) bool {
	return containsID(u.Following, userID)
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
