package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/playground-api/internal/model"
)

// RequestIDHeader carries the request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID propagates or generates a request ID for every request.
type RequestID struct {
	contextManager model.ContextManager
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager model.ContextManager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

// Handle reuses an incoming X-Request-ID when it is sane and generates a UUID otherwise.
func (m *RequestID) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := m.contextManager.SetRequestIDToContext(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
