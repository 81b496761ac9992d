package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_workspace/internal/token"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "disabled")

	const uid = "68bf0f1a2a3c4d5e6f708091"
	out, err := run(t, "token", "--user", uid, "--email", "a@x.com")
	require.NoError(t, err)

	claims, err := token.NewManager("cli-secret", time.Hour, "social_workspace").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenCmdRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "disabled")

	_, err := run(t, "token", "--user", "not-hex")
	assert.Error(t, err)

	_, err = run(t, "token")
	assert.Error(t, err)
}

func TestTokenCmdNeedsSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := run(t, "token", "--user", "68bf0f1a2a3c4d5e6f708091")
	assert.Error(t, err)
}

func TestRootListsSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Root().Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["ensure-indexes"])
	assert.True(t, names["token"])
}
