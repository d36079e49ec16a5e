package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dtroode/playground-api/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func renderError(w http.ResponseWriter, status int, message string) {
	renderJSON(w, status, errorResponse{Error: message})
}

// NotFound renders the JSON body for unknown routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	renderError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed renders the JSON body for unsupported verbs.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	renderError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// decodeBody reads a JSON payload of at most maxBytes into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return validation.MalformedBody(err)
	}
	return nil
}

// parseQueryID parses a numeric query parameter. ok is false when the parameter is absent;
// err is non-nil when it is present but not an integer.
func parseQueryID(r *http.Request, name string) (id int, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}
