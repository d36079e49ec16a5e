package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/playground-api/internal/model"
)

// handleError maps domain errors to HTTP responses. resource names the entity in 404 messages.
func handleError(w http.ResponseWriter, err error, resource string) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		renderError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, model.ErrNotFound):
		renderError(w, http.StatusNotFound, resource+" not found")
	default:
		renderError(w, http.StatusInternalServerError, "internal server error")
	}
}
