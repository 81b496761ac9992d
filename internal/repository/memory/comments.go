package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/cursor"
	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

type CommentRepository struct {
	db *DB
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	unlock, err := r.db.write(ctx, "comments.Create")
	if err != nil {
		return err
	}
	defer unlock()

	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	r.db.comments[c.ID] = *c
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	unlock, err := r.db.write(ctx, "comments.Delete")
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := r.db.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.comments, id)
	return nil
}

func (r *CommentRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	unlock, err := r.db.write(ctx, "comments.DeleteByPost")
	if err != nil {
		return 0, err
	}
	defer unlock()

	var n int64
	for id, c := range r.db.comments {
		if c.PostID == postID {
			delete(r.db.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *CommentRepository) ListByPostOldestFirst(
	ctx context.Context,
	postID bson.ObjectID,
	cursorStr string,
	limit int64,
) ([]models.Comment, *string, error) {
	var (
		hasCursor bool
		curT      time.Time
		curID     bson.ObjectID
	)
	if cursorStr != "" {
		t, oid, err := cursor.DecodeCommentCursor(cursorStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", repository.ErrInvalidCursor, err)
		}
		hasCursor, curT, curID = true, t, oid
	}

	unlock, err := r.db.read(ctx, "comments.ListByPostOldestFirst")
	if err != nil {
		return nil, nil, err
	}
	defer unlock()

	all := []models.Comment{}
	for _, c := range r.db.comments {
		if c.PostID != postID {
			continue
		}
		if hasCursor && !cursor.After(c.CreatedAt, c.ID, curT, curID) {
			continue
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return cursor.After(all[j].CreatedAt, all[j].ID, all[i].CreatedAt, all[i].ID)
	})

	if int64(len(all)) > limit {
		items := all[:limit]
		last := items[len(items)-1]
		s := cursor.EncodeCommentCursor(last.CreatedAt, last.ID)
		return items, &s, nil
	}
	return all, nil, nil
}
