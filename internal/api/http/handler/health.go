package handler

import "net/http"

// Health reports that the HTTP server is accepting requests.
func Health(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
