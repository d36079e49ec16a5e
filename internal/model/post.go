package model

import (
	"context"
	"slices"
	"time"
)

// PostStore defines in-memory storage operations for posts.
type PostStore interface {
	Create(ctx context.Context, params CreatePostParams) (Post, error)
	GetByID(ctx context.Context, id int) (Post, error)
	List(ctx context.Context, filter PostFilter) ([]Post, error)
	Update(ctx context.Context, id int, params UpdatePostParams) (Post, error)
	Delete(ctx context.Context, id int) (Post, error)
	Count(ctx context.Context) int
	Seed(ctx context.Context, posts []Post) error
}

// Post represents a stored post.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy of p that shares no memory with it.
func (p Post) Clone() Post {
	p.Tags = cloneTags(p.Tags)
	return p
}

// HasTag reports whether the post is labelled with tag.
func (p Post) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// Merge applies the fields present in params. ID, AuthorID and CreatedAt never change.
func (p Post) Merge(params UpdatePostParams) Post {
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Content != nil {
		p.Content = *params.Content
	}
	if params.Published != nil {
		p.Published = *params.Published
	}
	if params.Tags != nil {
		p.Tags = cloneTags(*params.Tags)
	}
	return p
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	AuthorID int      `json:"authorId"`
	Tags     []string `json:"tags"`
}

// UpdatePostParams contains a partial post update. Nil fields are left untouched.
type UpdatePostParams struct {
	ID        *int      `json:"id"`
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Published *bool     `json:"published"`
	Tags      *[]string `json:"tags"`
}

// PostFilter narrows a post listing. An ID filter takes precedence over every other field.
type PostFilter struct {
	ID       *int
	AuthorID *int
	Tag      *string
}

// cloneTags never returns nil so tags always serialise as a JSON array.
func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
