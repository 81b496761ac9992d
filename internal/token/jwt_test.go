package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "social_workspace")

	tok, err := m.Issue("665f1c2a9b1e8a0012345678", "a@x.com")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2a9b1e8a0012345678", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "665f1c2a9b1e8a0012345678", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "social_workspace")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.Issue("665f1c2a9b1e8a0012345678", "a@x.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "social_workspace")
	other := NewManager("other-secret", time.Hour, "social_workspace")

	foreign, err := other.Issue("665f1c2a9b1e8a0012345678", "a@x.com")
	require.NoError(t, err)

	noneTok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": "665f1c2a9b1e8a0012345678",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "665f1c2a9b1e8a0012345678",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"alg none":     noneTok,
		"no expiry":    noExp,
		"missing user": noUser,
		"empty":        "",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
