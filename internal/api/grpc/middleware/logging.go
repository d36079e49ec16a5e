package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
)

// Logging logs gRPC requests and results.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	l.log(ctx, info.FullMethod, start, err)

	return resp, err
}

// HandleGRPCStream logs method name, duration and status for each streaming call.
func (l *Logging) HandleGRPCStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()

	err := handler(srv, ss)

	l.log(ss.Context(), info.FullMethod, start, err)

	return err
}

func (l *Logging) log(ctx context.Context, method string, start time.Time, err error) {
	requestID, _ := l.contextManager.GetRequestIDFromContext(ctx)
	statusCode := codeOf(err)

	if err != nil {
		l.logger.Error("gRPC request failed",
			"method", method,
			"duration_ms", time.Since(start).Milliseconds(),
			"status", statusCode.String(),
			"error", err.Error(),
			"request_id", requestID)
		return
	}

	l.logger.Info("gRPC request completed",
		"method", method,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", statusCode.String(),
		"request_id", requestID)
}

func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Internal
}
