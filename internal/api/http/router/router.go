package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/playground-api/internal/api/http/handler"
	"github.com/dtroode/playground-api/internal/api/http/middleware"
	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
)

// Router wires the HTTP handlers for the users and posts collections.
type Router struct {
	userService    handler.UserService
	postService    handler.PostService
	contextManager model.ContextManager
	logger         *logger.Logger
	maxBodyBytes   int64
}

// New creates new HTTP Router instance.
func New(
	userService handler.UserService,
	postService handler.PostService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	maxBodyBytes int64,
) *Router {
	return &Router{
		userService:    userService,
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
		maxBodyBytes:   maxBodyBytes,
	}
}

// Register builds the route table and wraps it with request ID, logging and recovery middleware.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()
	m.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	m.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	m.HandleFunc("/healthz", handler.Health).Methods(http.MethodGet)

	r.registerUserRoutes(m)
	r.registerPostRoutes(m)

	requestID := middleware.NewRequestID(r.contextManager)
	logging := middleware.NewLogging(r.logger, r.contextManager)
	recovery := middleware.NewRecovery(r.logger)

	return requestID.Handle(logging.Handle(recovery.Handle(m)))
}

func (r *Router) registerUserRoutes(m *mux.Router) {
	h := handler.NewUser(r.userService, r.logger, r.maxBodyBytes)

	m.HandleFunc("/api/users", h.List).Methods(http.MethodGet)
	m.HandleFunc("/api/users", h.Create).Methods(http.MethodPost)
	m.HandleFunc("/api/users", h.Update).Methods(http.MethodPut)
	m.HandleFunc("/api/users", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) registerPostRoutes(m *mux.Router) {
	h := handler.NewPost(r.postService, r.logger, r.maxBodyBytes)

	m.HandleFunc("/api/posts", h.List).Methods(http.MethodGet)
	m.HandleFunc("/api/posts", h.Create).Methods(http.MethodPost)
	m.HandleFunc("/api/posts", h.Update).Methods(http.MethodPut)
	m.HandleFunc("/api/posts", h.Delete).Methods(http.MethodDelete)
}
