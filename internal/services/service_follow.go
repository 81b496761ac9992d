package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/audit"
	"social_workspace/internal/logger"
	"social_workspace/internal/repository"
)

// FollowService maintains the mirrored following/followers edges. The two
// writes are independent single-document updates; both are idempotent, so
// a half-applied follow is repaired by repeating it.
type FollowService struct {
	users repository.UserRepository
}

func NewFollowService(users repository.UserRepository) *FollowService {
	return &FollowService{users: users}
}

func (s *FollowService) Follow(ctx context.Context, requesterID, targetID string) error {
	me, target, err := s.resolvePair(ctx, requesterID, targetID)
	if err != nil {
		return err
	}

	if err := s.users.AddFollowing(ctx, me, target); err != nil {
		return s.edgeErr("follow", err)
	}
	if err := s.users.AddFollower(ctx, target, me); err != nil {
		l := logger.Ctx(ctx)
		l.Warn().Err(err).Str("target_id", targetID).Msg("follow: followers edge not written")
		return s.edgeErr("follow", err)
	}

	audit.LogTarget(ctx, audit.ActionFollow, requesterID, targetID, "user followed")
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, requesterID, targetID string) error {
	me, target, err := s.resolvePair(ctx, requesterID, targetID)
	if err != nil {
		return err
	}

	if err := s.users.RemoveFollowing(ctx, me, target); err != nil {
		return s.edgeErr("unfollow", err)
	}
	if err := s.users.RemoveFollower(ctx, target, me); err != nil {
		l := logger.Ctx(ctx)
		l.Warn().Err(err).Str("target_id", targetID).Msg("unfollow: followers edge not removed")
		return s.edgeErr("unfollow", err)
	}

	audit.LogTarget(ctx, audit.ActionUnfollow, requesterID, targetID, "user unfollowed")
	return nil
}

func (s *FollowService) resolvePair(ctx context.Context, requesterID, targetID string) (bson.ObjectID, bson.ObjectID, error) {
	me, err := parseID(requesterID, ErrUserNotFound)
	if err != nil {
		return me, me, err
	}
	target, err := parseID(targetID, ErrUserNotFound)
	if err != nil {
		return me, target, err
	}
	if me == target {
		return me, target, invalid("You cannot follow yourself.")
	}

	for _, id := range []bson.ObjectID{me, target} {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return me, target, ErrUserNotFound
			}
			return me, target, fmt.Errorf("resolve user: %w", err)
		}
	}
	return me, target, nil
}

// edgeErr keeps a user deleted between resolve and write a 404.
func (s *FollowService) edgeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
