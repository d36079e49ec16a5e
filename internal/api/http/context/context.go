package context

import (
	"context"
)

type requestIDKey struct{}

// Manager stores the request ID in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext returns a copy of ctx carrying requestID.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, if any.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}
