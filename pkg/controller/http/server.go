package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
)

// DefaultAddr is the listen address used when none is configured
const DefaultAddr = "localhost:8080"

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a read-only HTTP API over stored decisions
func NewServer(
	ctx context.Context,
	decisionUC interfaces.DecisionUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: DefaultAddr,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{decisions: decisionUC}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", h.health)

	// Decision API
	router.Route("/api", func(r chi.Router) {
		r.Get("/decisions", h.listDecisions)
		r.Get("/decisions/{id}", h.getDecision)
		r.Get("/search", h.search)
		r.Get("/stats", h.stats)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
