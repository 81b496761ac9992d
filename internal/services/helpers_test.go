package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"social_workspace/dto"
	"social_workspace/internal/repository"
	"social_workspace/internal/repository/memory"
	"social_workspace/internal/token"
)

type testEnv struct {
	db         *memory.DB
	store      *repository.Store
	tokens     *token.Manager
	auth       *AuthService
	users      *UserService
	follow     *FollowService
	posts      *PostService
	engagement *EngagementService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := memory.New()
	store := db.Store()
	tm := token.NewManager("test-secret", time.Hour, "test")
	return &testEnv{
		db:         db,
		store:      store,
		tokens:     tm,
		auth:       NewAuthService(store.Users, tm, bcrypt.MinCost),
		users:      NewUserService(store.Users),
		follow:     NewFollowService(store.Users),
		posts:      NewPostService(store),
		engagement: NewEngagementService(store),
	}
}

func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	res, err := e.auth.Signup(context.Background(), dto.SignupReq{Email: email, Password: "secret1"})
	require.NoError(t, err)
	return res.UserID
}

func (e *testEnv) createPost(t *testing.T, owner, title string) string {
	t.Helper()
	p, err := e.posts.CreatePost(context.Background(), owner, dto.CreatePostReq{Title: title, Description: "hello world"})
	require.NoError(t, err)
	return p.ID.Hex()
}
