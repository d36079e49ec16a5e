package memory

import (
	"context"

	"github.com/dtroode/playground-api/internal/clock"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/query"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	table *table[model.Post]
	clock clock.Clock
}

func NewPostRepository(clock clock.Clock) *PostRepository {
	return &PostRepository{
		table: newTable(
			func(p model.Post) int { return p.ID },
			model.Post.Clone,
		),
		clock: clock,
	}
}

// Create stores a new unpublished post stamped with the current time.
func (r *PostRepository) Create(_ context.Context, params model.CreatePostParams) (model.Post, error) {
	now := r.clock.NowUtc()

	post := r.table.insert(func(id int) model.Post {
		return model.Post{
			ID:        id,
			Title:     params.Title,
			Content:   params.Content,
			AuthorID:  params.AuthorID,
			Published: false,
			Tags:      params.Tags,
			CreatedAt: now,
		}.Clone()
	})

	return post, nil
}

func (r *PostRepository) GetByID(_ context.Context, id int) (model.Post, error) {
	return r.table.get(id)
}

func (r *PostRepository) List(_ context.Context, filter model.PostFilter) ([]model.Post, error) {
	return r.table.list(query.PostPredicates(filter)...), nil
}

func (r *PostRepository) Update(_ context.Context, id int, params model.UpdatePostParams) (model.Post, error) {
	return r.table.update(id, func(existing model.Post) model.Post {
		return existing.Merge(params)
	})
}

func (r *PostRepository) Delete(_ context.Context, id int) (model.Post, error) {
	return r.table.remove(id)
}

func (r *PostRepository) Count(_ context.Context) int {
	return r.table.count()
}

func (r *PostRepository) Seed(_ context.Context, posts []model.Post) error {
	return r.table.seed(posts)
}
