package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cursor marks the last comment of a page (created_at + _id).
type Cursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

// EncodeCommentCursor is URL safe so it can travel in a query string.
func EncodeCommentCursor(t time.Time, id bson.ObjectID) string {
	b, _ := json.Marshal(Cursor{
		CreatedAt: t.UnixMilli(),
		ID:        id.Hex(),
	})
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeCommentCursor(s string) (time.Time, bson.ObjectID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	var p Cursor
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	return time.UnixMilli(p.CreatedAt).UTC(), oid, nil
}

// After reports whether (t, id) sorts after the cursor position in
// ascending (created_at, _id) order.
func After(t time.Time, id bson.ObjectID, curT time.Time, curID bson.ObjectID) bool {
	tm, cm := t.UnixMilli(), curT.UnixMilli()
	if tm != cm {
		return tm > cm
	}
	return id.Hex() > curID.Hex()
}
