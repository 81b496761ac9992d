package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoTransactor runs callbacks inside a session transaction. Requires a
// replica set or sharded cluster.
type MongoTransactor struct {
	Client *mongo.Client
}

var _ Transactor = (*MongoTransactor)(nil)

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := t.Client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc context.Context) (any, error) {
		return nil, fn(sc)
	})
	return err
}

func (t *MongoTransactor) Ping(ctx context.Context) error {
	return t.Client.Ping(ctx, readpref.Primary())
}

// NewMongoStore wires the mongo repositories for db.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	tx := &MongoTransactor{Client: client}
	return &Store{
		Users:    NewMongoUserRepository(db),
		Posts:    NewMongoPostRepository(db),
		Comments: NewMongoCommentRepository(db),
		Tx:       tx,
		Health:   tx,
	}
}
