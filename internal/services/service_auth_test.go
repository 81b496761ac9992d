package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_workspace/dto"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and token", func(t *testing.T) {
		env := newTestEnv(t)
		res, err := env.auth.Signup(ctx, dto.SignupReq{Email: "  A@X.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", res.Email)

		claims, err := env.tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.UserID, claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)

		u, err := env.store.Users.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", u.Password)
		assert.Empty(t, u.Posts)
		assert.Empty(t, u.Followers)
		assert.Empty(t, u.Following)
	})

	t.Run("duplicate email differing in case", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")

		_, err := env.auth.Signup(ctx, dto.SignupReq{Email: "A@X.COM", Password: "another1"})
		assert.ErrorIs(t, err, ErrEmailTaken)

		users, err := env.users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(t)
		for _, req := range []dto.SignupReq{
			{Email: "not-an-email", Password: "secret1"},
			{Email: "a@x.com", Password: "short"},
			{Email: "", Password: ""},
		} {
			_, err := env.auth.Signup(ctx, req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr, "%+v", req)
		}
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		env := newTestEnv(t)
		// 40 runes pass the length tag but take 80 bytes
		_, err := env.auth.Signup(ctx, dto.SignupReq{Email: "a@x.com", Password: strings.Repeat("é", 40)})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "password")

		_, err = env.store.Users.GetByEmail(ctx, "a@x.com")
		assert.Error(t, err)
	})

	t.Run("store failure is not a domain error", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.FailNext("users.Create", errors.New("disk on fire"))
		_, err := env.auth.Signup(ctx, dto.SignupReq{Email: "a@x.com", Password: "secret1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	uid := env.signup(t, "a@x.com")

	t.Run("correct credentials", func(t *testing.T) {
		res, err := env.auth.Login(ctx, dto.LoginReq{Email: "A@x.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, uid, res.UserID)

		claims, err := env.tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, uid, claims.UserID)
	})

	cases := map[string]dto.LoginReq{
		"wrong password": {Email: "a@x.com", Password: "wrong-pass"},
		"unknown email":  {Email: "b@x.com", Password: "secret1"},
		"malformed":      {Email: "nope", Password: ""},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.auth.Login(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUserListOmitsPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@x.com")
	env.signup(t, "b@x.com")

	users, err := env.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
