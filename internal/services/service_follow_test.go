package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.signup(t, "a@x.com")
	b := env.signup(t, "b@x.com")
	aID, _ := bson.ObjectIDFromHex(a)
	bID, _ := bson.ObjectIDFromHex(b)

	edges := func() (following, followers []bson.ObjectID) {
		ua, err := env.store.Users.GetByID(ctx, aID)
		require.NoError(t, err)
		ub, err := env.store.Users.GetByID(ctx, bID)
		require.NoError(t, err)
		return ua.Following, ub.Followers
	}

	require.NoError(t, env.follow.Follow(ctx, a, b))
	following, followers := edges()
	assert.Equal(t, []bson.ObjectID{bID}, following)
	assert.Equal(t, []bson.ObjectID{aID}, followers)

	ua, err := env.store.Users.GetByID(ctx, aID)
	require.NoError(t, err)
	assert.True(t, ua.IsFollowing(bID))
	assert.False(t, ua.IsFollowing(aID))

	t.Run("following twice keeps one edge", func(t *testing.T) {
		require.NoError(t, env.follow.Follow(ctx, a, b))
		following, followers := edges()
		assert.Len(t, following, 1)
		assert.Len(t, followers, 1)
	})

	t.Run("unfollow removes both edges", func(t *testing.T) {
		require.NoError(t, env.follow.Unfollow(ctx, a, b))
		following, followers := edges()
		assert.Empty(t, following)
		assert.Empty(t, followers)

		ua, err := env.store.Users.GetByID(ctx, aID)
		require.NoError(t, err)
		assert.False(t, ua.IsFollowing(bID))

		require.NoError(t, env.follow.Unfollow(ctx, a, b))
	})
}

func TestFollowErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.signup(t, "a@x.com")

	var verr *ValidationError
	assert.ErrorAs(t, env.follow.Follow(ctx, a, a), &verr)

	assert.ErrorIs(t, env.follow.Follow(ctx, a, bson.NewObjectID().Hex()), ErrUserNotFound)
	assert.ErrorIs(t, env.follow.Unfollow(ctx, a, "bogus"), ErrUserNotFound)
	assert.ErrorIs(t, env.follow.Follow(ctx, bson.NewObjectID().Hex(), a), ErrUserNotFound)
}

func TestSignupLikeScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	a := env.signup(t, "a@x.com")
	pid := env.createPost(t, a, "Hi")

	p, err := env.posts.GetPost(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, p.LikedBy)

	require.NoError(t, env.engagement.LikePost(ctx, a, pid))
	assert.ErrorIs(t, env.engagement.LikePost(ctx, a, pid), ErrAlreadyLiked)
}
