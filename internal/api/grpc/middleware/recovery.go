package middleware

import (
	"context"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/playground-api/internal/logger"
)

// RecoveryOption returns a recovery handler that logs the panic and reports codes.Internal.
func RecoveryOption(logger *logger.Logger) recovery.Option {
	return recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "gRPC handler panicked",
			"panic", p,
			"stack", string(debug.Stack()))
		return status.Error(codes.Internal, "internal server error")
	})
}
