package service

import (
	"context"
	"fmt"

	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/validation"
)

type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

func (s *Post) CreatePost(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	if err := validation.CreatePost(params); err != nil {
		return model.Post{}, err
	}

	post, err := s.postStore.Create(ctx, params)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"author_id", post.AuthorID,
		"tags", len(post.Tags))

	return post, nil
}

func (s *Post) GetPost(ctx context.Context, id int) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ListPosts returns posts matching filter. An ID filter resolves to exactly one post or ErrNotFound.
func (s *Post) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	if filter.ID != nil {
		post, err := s.GetPost(ctx, *filter.ID)
		if err != nil {
			return nil, err
		}
		return []model.Post{post}, nil
	}

	posts, err := s.postStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s *Post) UpdatePost(ctx context.Context, params model.UpdatePostParams) (model.Post, error) {
	if err := validation.UpdatePost(params); err != nil {
		return model.Post{}, err
	}

	post, err := s.postStore.Update(ctx, *params.ID, params)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("Post service: post updated", "post_id", post.ID)

	return post, nil
}

func (s *Post) DeletePost(ctx context.Context, id int) (model.Post, error) {
	post, err := s.postStore.Delete(ctx, id)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted", "post_id", post.ID)

	return post, nil
}
