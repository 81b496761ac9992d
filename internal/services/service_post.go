package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/dto"
	"social_workspace/internal/audit"
	"social_workspace/internal/logger"
	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

type PostService struct {
	store *repository.Store
	now   func() time.Time
}

func NewPostService(store *repository.Store) *PostService {
	return &PostService{store: store, now: time.Now}
}

// CreatePost inserts the post and links it into the owner's posts in one
// transaction.
func (s *PostService) CreatePost(ctx context.Context, ownerID string, req dto.CreatePostReq) (*models.Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	owner, err := parseID(ownerID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Users.GetByID(ctx, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	post := models.NewPost(owner, req.Title, req.Description, s.now().UTC())
	err = s.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.Posts.Create(ctx, post); err != nil {
			return err
		}
		return s.store.Users.AddPost(ctx, owner, post.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	audit.LogTarget(ctx, audit.ActionPostCreate, ownerID, post.ID.Hex(), "post created")
	return post, nil
}

// DeletePost removes the post, its owner reference and its comments in one
// transaction. Only the owner may delete.
func (s *PostService) DeletePost(ctx context.Context, requesterID, postID string) error {
	pid, err := parseID(postID, ErrPostNotFound)
	if err != nil {
		return err
	}
	post, err := s.getPost(ctx, pid)
	if err != nil {
		return err
	}

	if post.Creator.Hex() != requesterID {
		audit.LogTarget(ctx, audit.ActionPostDeleteDenied, requesterID, postID, "delete refused, not the owner")
		return ErrNotPostOwner
	}

	var removedComments int64
	err = s.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.Users.RemovePost(ctx, post.Creator, pid); err != nil {
			return err
		}
		if err := s.store.Posts.Delete(ctx, pid); err != nil {
			return err
		}
		n, err := s.store.Comments.DeleteByPost(ctx, pid)
		removedComments = n
		return err
	})
	if err != nil {
		// deleted concurrently by another request of the owner
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}

	l := logger.Ctx(ctx)
	l.Debug().Str("post_id", postID).Int64("comments", removedComments).Msg("post comments removed")
	audit.LogTarget(ctx, audit.ActionPostDelete, requesterID, postID, "post deleted")
	return nil
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	pid, err := parseID(postID, ErrPostNotFound)
	if err != nil {
		return nil, err
	}
	return s.getPost(ctx, pid)
}

// ListPosts returns the owner's posts oldest first.
func (s *PostService) ListPosts(ctx context.Context, ownerID string) ([]models.Post, error) {
	owner, err := parseID(ownerID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.Posts.ListByCreator(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) getPost(ctx context.Context, pid bson.ObjectID) (*models.Post, error) {
	post, err := s.store.Posts.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}
