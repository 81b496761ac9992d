package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"social_workspace/internal/models"
)

type MongoUserRepository struct {
	Col *mongo.Collection
}

var _ UserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{Col: db.Collection(ColUsers)}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if _, err := r.Col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.Col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List never loads password hashes.
func (r *MongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.Col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) AddPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"posts": postID}})
}

func (r *MongoUserRepository) RemovePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
}

func (r *MongoUserRepository) AddFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"following": targetID}})
}

func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"following": targetID}})
}

func (r *MongoUserRepository) AddFollower(ctx context.Context, userID, followerID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (r *MongoUserRepository) RemoveFollower(ctx context.Context, userID, followerID bson.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (r *MongoUserRepository) update(ctx context.Context, userID bson.ObjectID, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
