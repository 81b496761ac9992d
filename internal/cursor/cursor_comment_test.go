package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCommentCursorRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC)
	id := bson.NewObjectID()

	s := EncodeCommentCursor(now, id)
	assert.NotContains(t, s, "+")
	assert.NotContains(t, s, "/")

	gotT, gotID, err := DecodeCommentCursor(s)
	require.NoError(t, err)
	assert.Equal(t, now.Truncate(time.Millisecond), gotT)
	assert.Equal(t, id, gotID)
}

func TestDecodeCommentCursorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"%%%", "bm90LWpzb24", "eyJjcmVhdGVkQXQiOjEsImlkIjoibm9wZSJ9"} {
		_, _, err := DecodeCommentCursor(s)
		assert.Error(t, err, s)
	}
}

func TestAfter(t *testing.T) {
	base := time.UnixMilli(1_700_000_000_000).UTC()
	a := bson.NewObjectID()
	b := bson.NewObjectID()

	assert.True(t, After(base.Add(time.Millisecond), a, base, b))
	assert.False(t, After(base, a, base.Add(time.Millisecond), b))
	assert.True(t, After(base, b, base, a))
	assert.False(t, After(base, a, base, a))
}
