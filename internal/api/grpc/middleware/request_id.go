package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/playground-api/internal/model"
)

// RequestIDMetadataKey is the incoming metadata key carrying a caller-supplied request ID.
const RequestIDMetadataKey = "x-request-id"

const maxRequestIDLength = 128

// RequestID injects a request ID into the call context, reusing the caller's when present.
type RequestID struct {
	contextManager model.ContextManager
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager model.ContextManager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

// HandleGRPC is the unary interceptor.
func (m *RequestID) HandleGRPC(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	return handler(m.withRequestID(ctx), req)
}

// HandleGRPCStream is the stream interceptor.
func (m *RequestID) HandleGRPCStream(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	return handler(srv, &wrappedStream{ServerStream: ss, ctx: m.withRequestID(ss.Context())})
}

func (m *RequestID) withRequestID(ctx context.Context) context.Context {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDMetadataKey); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" || len(requestID) > maxRequestIDLength {
		requestID = uuid.NewString()
	}

	return m.contextManager.SetRequestIDToContext(ctx, requestID)
}

type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}
