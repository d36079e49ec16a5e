package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/validation"
)

const postResource = "Post"

// PostService defines business operations for post management.
type PostService interface {
	CreatePost(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	GetPost(ctx context.Context, id int) (model.Post, error)
	ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	UpdatePost(ctx context.Context, params model.UpdatePostParams) (model.Post, error)
	DeletePost(ctx context.Context, id int) (model.Post, error)
}

// Post handles /api/posts.
type Post struct {
	postService  PostService
	logger       *logger.Logger
	maxBodyBytes int64
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, logger *logger.Logger, maxBodyBytes int64) *Post {
	return &Post{
		postService:  postService,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// List returns all posts, or those matching authorId and tag. An id parameter returns a single post.
func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.logger.Debug("Post handler: processing list posts request",
		"id", q.Get("id"),
		"author_id", q.Get("authorId"),
		"tag", q.Get("tag"))

	id, hasID, err := parseQueryID(r, "id")
	if hasID {
		if err != nil {
			handleError(w, model.ErrNotFound, postResource)
			return
		}
		post, err := h.postService.GetPost(r.Context(), id)
		if err != nil {
			h.fail(w, "get post", err)
			return
		}
		renderJSON(w, http.StatusOK, post)
		return
	}

	var filter model.PostFilter

	authorID, hasAuthor, err := parseQueryID(r, "authorId")
	if hasAuthor {
		if err != nil {
			renderJSON(w, http.StatusOK, []model.Post{})
			return
		}
		filter.AuthorID = &authorID
	}

	if tag := q.Get("tag"); tag != "" {
		filter.Tag = &tag
	}

	posts, err := h.postService.ListPosts(r.Context(), filter)
	if err != nil {
		h.fail(w, "list posts", err)
		return
	}

	h.logger.Debug("Post handler: posts listed", "count", len(posts))

	renderJSON(w, http.StatusOK, posts)
}

// Create stores a new post from the request body.
func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreatePostParams
	if err := decodeBody(w, r, h.maxBodyBytes, &params); err != nil {
		h.fail(w, "decode create post body", err)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), params)
	if err != nil {
		h.fail(w, "create post", err)
		return
	}

	renderJSON(w, http.StatusCreated, post)
}

// Update merges the request body into the post it names.
func (h *Post) Update(w http.ResponseWriter, r *http.Request) {
	var params model.UpdatePostParams
	if err := decodeBody(w, r, h.maxBodyBytes, &params); err != nil {
		h.fail(w, "decode update post body", err)
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), params)
	if err != nil {
		h.fail(w, "update post", err)
		return
	}

	renderJSON(w, http.StatusOK, post)
}

// Delete removes the post named by the id query parameter and returns it.
func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	id, hasID, err := parseQueryID(r, "id")
	if !hasID {
		h.fail(w, "delete post", validation.MissingPostID())
		return
	}
	if err != nil {
		handleError(w, model.ErrNotFound, postResource)
		return
	}

	post, err := h.postService.DeletePost(r.Context(), id)
	if err != nil {
		h.fail(w, "delete post", err)
		return
	}

	renderJSON(w, http.StatusOK, post)
}

func (h *Post) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Warn("Post handler: request rejected", "op", op, "error", err.Error())
	handleError(w, err, postResource)
}
