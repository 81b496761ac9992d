// Package memory is an in-process implementation of the repository
// interfaces. Transactions hold the store's write lock and roll back to a
// snapshot when the callback fails, so readers never see a partial write
// group.
package memory

import (
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

type txKey struct{}

type DB struct {
	mu       sync.RWMutex
	users    map[bson.ObjectID]models.User
	emails   map[string]bson.ObjectID
	posts    map[bson.ObjectID]models.Post
	comments map[bson.ObjectID]models.Comment

	fmu      sync.Mutex
	failures map[string]error
}

var (
	_ repository.Transactor = (*DB)(nil)
	_ repository.Pinger     = (*DB)(nil)
)

func New() *DB {
	return &DB{
		users:    make(map[bson.ObjectID]models.User),
		emails:   make(map[string]bson.ObjectID),
		posts:    make(map[bson.ObjectID]models.Post),
		comments: make(map[bson.ObjectID]models.Comment),
		failures: make(map[string]error),
	}
}

// Store exposes db through the repository interfaces.
func (db *DB) Store() *repository.Store {
	return &repository.Store{
		Users:    &UserRepository{db: db},
		Posts:    &PostRepository{db: db},
		Comments: &CommentRepository{db: db},
		Tx:       db,
		Health:   db,
	}
}

// FailNext makes the next call of op (e.g. "users.AddPost") return err
// without touching any data.
func (db *DB) FailNext(op string, err error) {
	db.fmu.Lock()
	defer db.fmu.Unlock()
	db.failures[op] = err
}

func (db *DB) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (db *DB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	snap := db.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, db)); err != nil {
		db.restore(snap)
		return err
	}
	return nil
}

func (db *DB) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*DB)
	return owner == db
}

// write and read take the store lock unless ctx already runs inside one of
// db's transactions, which holds it.
func (db *DB) write(ctx context.Context, op string) (func(), error) {
	return db.acquire(ctx, op, db.mu.Lock, db.mu.Unlock)
}

func (db *DB) read(ctx context.Context, op string) (func(), error) {
	return db.acquire(ctx, op, db.mu.RLock, db.mu.RUnlock)
}

func (db *DB) acquire(ctx context.Context, op string, lock, unlock func()) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if db.inTx(ctx) {
		unlock = func() {}
	} else {
		lock()
	}
	if err := db.takeFailure(op); err != nil {
		unlock()
		return nil, err
	}
	return unlock, nil
}

func (db *DB) takeFailure(op string) error {
	db.fmu.Lock()
	defer db.fmu.Unlock()
	err, ok := db.failures[op]
	if !ok {
		return nil
	}
	delete(db.failures, op)
	return err
}

type snapshot struct {
	users    map[bson.ObjectID]models.User
	emails   map[string]bson.ObjectID
	posts    map[bson.ObjectID]models.Post
	comments map[bson.ObjectID]models.Comment
}

func (db *DB) snapshot() snapshot {
	s := snapshot{
		users:    make(map[bson.ObjectID]models.User, len(db.users)),
		emails:   make(map[string]bson.ObjectID, len(db.emails)),
		posts:    make(map[bson.ObjectID]models.Post, len(db.posts)),
		comments: make(map[bson.ObjectID]models.Comment, len(db.comments)),
	}
	for k, v := range db.users {
		s.users[k] = cloneUser(v)
	}
	for k, v := range db.emails {
		s.emails[k] = v
	}
	for k, v := range db.posts {
		s.posts[k] = clonePost(v)
	}
	for k, v := range db.comments {
		s.comments[k] = v
	}
	return s
}

func (db *DB) restore(s snapshot) {
	db.users = s.users
	db.emails = s.emails
	db.posts = s.posts
	db.comments = s.comments
}

func cloneUser(u models.User) models.User {
	u.Posts = slices.Clone(u.Posts)
	u.Followers = slices.Clone(u.Followers)
	u.Following = slices.Clone(u.Following)
	return u
}

func clonePost(p models.Post) models.Post {
	p.LikedBy = slices.Clone(p.LikedBy)
	p.Comments = slices.Clone(p.Comments)
	return p
}

func addToSet(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func pull(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	return slices.DeleteFunc(ids, func(v bson.ObjectID) bool { return v == id })
}

func nonNil(ids []bson.ObjectID) []bson.ObjectID {
	if ids == nil {
		return []bson.ObjectID{}
	}
	return ids
}
