package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"social_workspace/internal/cursor"
	"social_workspace/internal/models"
)

type MongoCommentRepository struct {
	Col *mongo.Collection
}

var _ CommentRepository = (*MongoCommentRepository)(nil)

func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{Col: db.Collection(ColComments)}
}

func (r *MongoCommentRepository) Create(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoCommentRepository) ListByPostOldestFirst(
	ctx context.Context,
	postID bson.ObjectID,
	cursorStr string,
	limit int64,
) (items []models.Comment, next *string, err error) {

	filter := bson.M{"post_id": postID}

	if cursorStr != "" {
		t, oid, derr := cursor.DecodeCommentCursor(cursorStr)
		if derr != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidCursor, derr)
			return
		}
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$gt": t}},
			{"created_at": t, "_id": bson.M{"$gt": oid}},
		}
	}

	// one extra row tells us whether another page exists
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit + 1)

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return
	}
	defer cur.Close(ctx)

	all := []models.Comment{}
	if err = cur.All(ctx, &all); err != nil {
		return
	}

	if int64(len(all)) > limit {
		items = all[:limit]
		last := items[len(items)-1]
		s := cursor.EncodeCommentCursor(last.CreatedAt, last.ID)
		next = &s
	} else {
		items = all
	}
	return
}
