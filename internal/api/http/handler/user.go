package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/validation"
)

const userResource = "User"

// UserService defines business operations for user management.
type UserService interface {
	CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	DeleteUser(ctx context.Context, id int) (model.User, error)
}

// User handles /api/users.
type User struct {
	userService  UserService
	logger       *logger.Logger
	maxBodyBytes int64
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger, maxBodyBytes int64) *User {
	return &User{
		userService:  userService,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *User) List(w http.ResponseWriter, r *http.Request) {
	id, hasID, err := parseQueryID(r, "id")
	if hasID {
		if err != nil {
			handleError(w, model.ErrNotFound, userResource)
			return
		}
		user, err := h.userService.GetUser(r.Context(), id)
		if err != nil {
			h.fail(w, "get user", err)
			return
		}
		renderJSON(w, http.StatusOK, user)
		return
	}

	var filter model.UserFilter
	if role := r.URL.Query().Get("role"); role != "" {
		roleFilter := model.Role(role)
		filter.Role = &roleFilter
	}

	users, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		h.fail(w, "list users", err)
		return
	}

	renderJSON(w, http.StatusOK, users)
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUserParams
	if err := decodeBody(w, r, h.maxBodyBytes, &params); err != nil {
		h.fail(w, "decode create user body", err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), params)
	if err != nil {
		h.fail(w, "create user", err)
		return
	}

	renderJSON(w, http.StatusCreated, user)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateUserParams
	if err := decodeBody(w, r, h.maxBodyBytes, &params); err != nil {
		h.fail(w, "decode update user body", err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), params)
	if err != nil {
		h.fail(w, "update user", err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, hasID, err := parseQueryID(r, "id")
	if !hasID {
		h.fail(w, "delete user", validation.MissingUserID())
		return
	}
	if err != nil {
		handleError(w, model.ErrNotFound, userResource)
		return
	}

	user, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		h.fail(w, "delete user", err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}

func (h *User) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Warn("User handler: request rejected", "op", op, "error", err.Error())
	handleError(w, err, userResource)
}
