package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/playground-api/internal/api/grpc/middleware"
	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
)

// Health service names reported for each collection.
const (
	UsersServiceName = "playground.users"
	PostsServiceName = "playground.posts"
)

// Router represents the operational gRPC router.
// It registers the health and reflection services and the interceptor chain.
type Router struct {
	health         *health.Server
	logger         *logger.Logger
	contextManager model.ContextManager
}

// New creates new gRPC Router instance.
func New(
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		health:         health.NewServer(),
		logger:         logger,
		contextManager: contextManager,
	}
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	requestID := middleware.NewRequestID(r.contextManager)
	logging := middleware.NewLogging(r.logger, r.contextManager)
	recoveryOpt := middleware.RecoveryOption(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			requestID.HandleGRPC,
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			requestID.HandleGRPCStream,
			logging.HandleGRPCStream,
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

func (r *Router) registerHealth(server *grpc.Server) {
	for _, name := range []string{"", UsersServiceName, PostsServiceName} {
		r.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(server, r.health)
}

// Shutdown marks every service as NOT_SERVING.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}
