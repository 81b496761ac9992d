package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_workspace/internal/models"
	"social_workspace/internal/repository"
)

type PostRepository struct {
	db *DB
}

var _ repository.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	unlock, err := r.db.write(ctx, "posts.Create")
	if err != nil {
		return err
	}
	defer unlock()

	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if _, exists := r.db.posts[p.ID]; exists {
		return repository.ErrDuplicateKey
	}
	stored := clonePost(*p)
	stored.LikedBy = nonNil(stored.LikedBy)
	stored.Comments = nonNil(stored.Comments)
	r.db.posts[p.ID] = stored
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	unlock, err := r.db.read(ctx, "posts.GetByID")
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := clonePost(p)
	return &out, nil
}

func (r *PostRepository) ListByCreator(ctx context.Context, creator bson.ObjectID) ([]models.Post, error) {
	unlock, err := r.db.read(ctx, "posts.ListByCreator")
	if err != nil {
		return nil, err
	}
	defer unlock()

	posts := []models.Post{}
	for _, p := range r.db.posts {
		if p.Creator == creator {
			posts = append(posts, clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedTime.Equal(posts[j].CreatedTime) {
			return posts[i].CreatedTime.Before(posts[j].CreatedTime)
		}
		return posts[i].ID.Hex() < posts[j].ID.Hex()
	})
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	unlock, err := r.db.write(ctx, "posts.Delete")
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := r.db.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.posts, id)
	return nil
}

func (r *PostRepository) AddLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	unlock, err := r.db.write(ctx, "posts.AddLiker")
	if err != nil {
		return false, err
	}
	defer unlock()

	p, ok := r.db.posts[postID]
	if !ok || p.IsLikedBy(userID) {
		return false, nil
	}
	p.LikedBy = append(p.LikedBy, userID)
	r.db.posts[postID] = p
	return true, nil
}

func (r *PostRepository) RemoveLiker(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	unlock, err := r.db.write(ctx, "posts.RemoveLiker")
	if err != nil {
		return false, err
	}
	defer unlock()

	p, ok := r.db.posts[postID]
	if !ok || !p.IsLikedBy(userID) {
		return false, nil
	}
	p.LikedBy = pull(p.LikedBy, userID)
	r.db.posts[postID] = p
	return true, nil
}

func (r *PostRepository) AppendComment(ctx context.Context, postID, commentID bson.ObjectID) error {
	unlock, err := r.db.write(ctx, "posts.AppendComment")
	if err != nil {
		return err
	}
	defer unlock()

	p, ok := r.db.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Comments = append(p.Comments, commentID)
	r.db.posts[postID] = p
	return nil
}
