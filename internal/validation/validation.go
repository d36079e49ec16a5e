// Package validation checks write payloads before they reach a store.
package validation

import (
	"strings"

	"github.com/dtroode/playground-api/internal/model"
)

const (
	msgMissingFields = "Missing required fields"
	msgInvalidRole   = `Invalid role. Must be "admin" or "user"`
	msgInvalidBody   = "Invalid request body"
	msgUserIDMissing = "User ID is required"
	msgPostIDMissing = "Post ID is required"
)

// CreateUser validates a user creation payload.
func CreateUser(params model.CreateUserParams) error {
	if blank(params.Name) || blank(params.Email) || params.Role == "" {
		return model.NewValidationError(model.ValidationMissingFields, msgMissingFields)
	}
	if !params.Role.Valid() {
		return model.NewValidationError(model.ValidationInvalidEnum, msgInvalidRole)
	}
	return nil
}

// CreatePost validates a post creation payload.
func CreatePost(params model.CreatePostParams) error {
	if blank(params.Title) || blank(params.Content) || params.AuthorID == 0 {
		return model.NewValidationError(model.ValidationMissingFields, msgMissingFields)
	}
	return nil
}

// UpdateUser validates a partial user update. Only the identifier is required.
func UpdateUser(params model.UpdateUserParams) error {
	return requireID(params.ID, msgUserIDMissing)
}

// UpdatePost validates a partial post update. Only the identifier is required.
func UpdatePost(params model.UpdatePostParams) error {
	return requireID(params.ID, msgPostIDMissing)
}

// MissingUserID is returned when a request names no user.
func MissingUserID() error {
	return model.NewValidationError(model.ValidationMissingID, msgUserIDMissing)
}

// MissingPostID is returned when a request names no post.
func MissingPostID() error {
	return model.NewValidationError(model.ValidationMissingID, msgPostIDMissing)
}

// MalformedBody wraps a decoding failure.
func MalformedBody(err error) error {
	return &model.ValidationError{Kind: model.ValidationMalformedBody, Message: msgInvalidBody, Err: err}
}

// Zero is treated as absent.
func requireID(id *int, msg string) error {
	if id == nil || *id == 0 {
		return model.NewValidationError(model.ValidationMissingID, msg)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
