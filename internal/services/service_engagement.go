package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"social_workspace/dto"
	"social_workspace/internal/logger"
	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

const (
	DefaultCommentsLimit = 20
	MaxCommentsLimit     = 50
)

// EngagementService handles likes and comments. Each write touches a single
// document; no transaction is involved.
type EngagementService struct {
	store *repository.Store
	now   func() time.Time
}

func NewEngagementService(store *repository.Store) *EngagementService {
	return &EngagementService{store: store, now: time.Now}
}

func (s *EngagementService) LikePost(ctx context.Context, userID, postID string) error {
	uid, err := parseID(userID, ErrUserNotFound)
	if err != nil {
		return err
	}
	post, err := s.resolvePost(ctx, postID)
	if err != nil {
		return err
	}

	added, err := s.store.Posts.AddLiker(ctx, post.ID, uid)
	if err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	if !added {
		return s.noMatch(ctx, post.ID.Hex(), ErrAlreadyLiked)
	}
	return nil
}

func (s *EngagementService) UnlikePost(ctx context.Context, userID, postID string) error {
	uid, err := parseID(userID, ErrUserNotFound)
	if err != nil {
		return err
	}
	post, err := s.resolvePost(ctx, postID)
	if err != nil {
		return err
	}

	removed, err := s.store.Posts.RemoveLiker(ctx, post.ID, uid)
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	if !removed {
		return s.noMatch(ctx, post.ID.Hex(), ErrNotLiked)
	}
	return nil
}

// AddComment stores the comment and then appends its id to the post. If the
// append fails the comment is removed again, best effort.
func (s *EngagementService) AddComment(ctx context.Context, userID, postID string, req dto.CreateCommentReq) (*models.Comment, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	post, err := s.resolvePost(ctx, postID)
	if err != nil {
		return nil, err
	}
	uid, err := parseID(userID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Users.GetByID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve commenter: %w", err)
	}

	c := &models.Comment{
		PostID:    post.ID,
		Creator:   uid,
		Text:      req.Text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if err := s.store.Posts.AppendComment(ctx, post.ID, c.ID); err != nil {
		if derr := s.store.Comments.Delete(ctx, c.ID); derr != nil {
			l := logger.Ctx(ctx)
			l.Error().Err(derr).Str("comment_id", c.ID.Hex()).Msg("orphan comment left after failed append")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return c, nil
}

type CommentPage struct {
	Items      []models.Comment
	NextCursor *string
}

// ListComments pages a post's comments oldest first.
func (s *EngagementService) ListComments(ctx context.Context, postID, cursorStr string, limit int) (*CommentPage, error) {
	post, err := s.resolvePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultCommentsLimit
	}
	if limit > MaxCommentsLimit {
		limit = MaxCommentsLimit
	}

	items, next, err := s.store.Comments.ListByPostOldestFirst(ctx, post.ID, cursorStr, int64(limit))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCursor) {
			return nil, invalid("Invalid cursor.")
		}
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return &CommentPage{Items: items, NextCursor: next}, nil
}

func (s *EngagementService) resolvePost(ctx context.Context, postID string) (*models.Post, error) {
	pid, err := parseID(postID, ErrPostNotFound)
	if err != nil {
		return nil, err
	}
	post, err := s.store.Posts.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// noMatch tells a post deleted between lookup and update apart from a
// liker set that already had the wanted state.
func (s *EngagementService) noMatch(ctx context.Context, postID string, stateErr error) error {
	if _, err := s.resolvePost(ctx, postID); err != nil {
		return err
	}
	return stateErr
}
