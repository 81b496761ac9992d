package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

type UserRepository struct {
	db *DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	unlock, err := r.db.write(ctx, "users.Create")
	if err != nil {
		return err
	}
	defer unlock()

	if _, taken := r.db.emails[u.Email]; taken {
		return repository.ErrDuplicateKey
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	stored := cloneUser(*u)
	stored.Posts = nonNil(stored.Posts)
	stored.Followers = nonNil(stored.Followers)
	stored.Following = nonNil(stored.Following)

	r.db.users[u.ID] = stored
	r.db.emails[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	unlock, err := r.db.read(ctx, "users.GetByID")
	if err != nil {
		return nil, err
	}
	defer unlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	unlock, err := r.db.read(ctx, "users.GetByEmail")
	if err != nil {
		return nil, err
	}
	defer unlock()

	id, ok := r.db.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(r.db.users[id])
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	unlock, err := r.db.read(ctx, "users.List")
	if err != nil {
		return nil, err
	}
	defer unlock()

	users := make([]models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		u = cloneUser(u)
		u.Password = ""
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID.Hex() < users[j].ID.Hex()
	})
	return users, nil
}

func (r *UserRepository) AddPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.mutate(ctx, "users.AddPost", userID, func(u *models.User) {
		u.Posts = addToSet(u.Posts, postID)
	})
}

func (r *UserRepository) RemovePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.mutate(ctx, "users.RemovePost", userID, func(u *models.User) {
		u.Posts = pull(u.Posts, postID)
	})
}

func (r *UserRepository) AddFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.mutate(ctx, "users.AddFollowing", userID, func(u *models.User) {
		u.Following = addToSet(u.Following, targetID)
	})
}

func (r *UserRepository) RemoveFollowing(ctx context.Context, userID, targetID bson.ObjectID) error {
	return r.mutate(ctx, "users.RemoveFollowing", userID, func(u *models.User) {
		u.Following = pull(u.Following, targetID)
	})
}

func (r *UserRepository) AddFollower(ctx context.Context, userID, followerID bson.ObjectID) error {
	return r.mutate(ctx, "users.AddFollower", userID, func(u *models.User) {
		u.Followers = addToSet(u.Followers, followerID)
	})
}

func (r *UserRepository) RemoveFollower(ctx context.Context, userID, followerID bson.ObjectID) error {
	return r.mutate(ctx, "users.RemoveFollower", userID, func(u *models.User) {
		u.Followers = pull(u.Followers, followerID)
	})
}

func (r *UserRepository) mutate(ctx context.Context, op string, id bson.ObjectID, fn func(u *models.User)) error {
	unlock, err := r.db.write(ctx, op)
	if err != nil {
		return err
	}
	defer unlock()

	u, ok := r.db.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&u)
	r.db.users[id] = u
	return nil
}
