package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"social_workspace/internal/models"
)

type MongoPostRepository struct {
	Col *mongo.Collection
}

var _ PostRepository = (*MongoPostRepository)(nil)

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{Col: db.Collection(ColPosts)}
}

func (r *MongoPostRepository) Create(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *MongoPostRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoPostRepository) ListByCreator(ctx context.Context, creator bson.ObjectID) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_time", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.Col.Find(ctx, bson.M{"creator": creator}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLiker pushes only when userID is absent, so a concurrent double like
// matches at most once.
func (r *MongoPostRepository) AddLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID, "likedby": bson.M{"$ne": userID}},
		bson.M{"$push": bson.M{"likedby": userID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoPostRepository) RemoveLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID, "likedby": userID},
		bson.M{"$pull": bson.M{"likedby": userID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoPostRepository) AppendComment(ctx context.Context, postID, commentID bson.ObjectID) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
