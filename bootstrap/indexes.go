package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"social_workspace/internal/repository"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func indexes() []indexSpec {
	return []indexSpec{
		{
			collection: repository.ColUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			collection: repository.ColPosts,
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "creator", Value: 1},
					{Key: "created_time", Value: 1},
					{Key: "_id", Value: 1},
				},
				Options: options.Index().SetName("creator_created_time"),
			},
		},
		{
			collection: repository.ColComments,
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "post_id", Value: 1},
					{Key: "created_at", Value: 1},
					{Key: "_id", Value: 1},
				},
				Options: options.Index().SetName("post_created_at"),
			},
		},
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is what turns a concurrent duplicate signup into EmailTaken.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ix := range indexes() {
		if _, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, ix.model); err != nil {
			return fmt.Errorf("ensure index on %s: %w", ix.collection, err)
		}
	}
	return nil
}
