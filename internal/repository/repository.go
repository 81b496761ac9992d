package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidCursor = errors.New("invalid cursor")
)

// Collection names shared by the mongo store and the index bootstrap.
const (
	ColUsers    = "users"
	ColPosts    = "posts"
	ColComments = "comments"
)

type UserRepository interface {
	// Create inserts u; ErrDuplicateKey when the email is taken.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)

	AddPost(ctx context.Context, userID, postID bson.ObjectID) error
	RemovePost(ctx context.Context, userID, postID bson.ObjectID) error

	// Set semantics: adding an existing edge or removing a missing one is not an error.
	AddFollowing(ctx context.Context, userID, targetID bson.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, targetID bson.ObjectID) error
	AddFollower(ctx context.Context, userID, followerID bson.ObjectID) error
	RemoveFollower(ctx context.Context, userID, followerID bson.ObjectID) error
}

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	// ListByCreator returns the creator's posts oldest first.
	ListByCreator(ctx context.Context, creator bson.ObjectID) ([]models.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	// AddLiker reports false when userID is already a liker or the post is gone.
	AddLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error)
	// RemoveLiker reports false when userID is not a liker or the post is gone.
	RemoveLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error)
	AppendComment(ctx context.Context, postID, commentID bson.ObjectID) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
	// ListByPostOldestFirst pages a post's comments with a keyset cursor.
	// next is nil on the last page.
	ListByPostOldestFirst(ctx context.Context, postID bson.ObjectID, cursorStr string, limit int64) (items []models.Comment, next *string, err error)
}

// Transactor runs fn so that every write made through ctx becomes visible
// together or not at all.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles the repositories handed to the services.
type Store struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
	Tx       Transactor
	Health   Pinger
}
