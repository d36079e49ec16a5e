package model

import "context"

// ContextManager stores and retrieves per-request values.
type ContextManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
}
