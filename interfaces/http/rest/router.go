// Package rest wires the HTTP delivery layer.
package rest

import (
	"net/http"

	"narad-backend/application/ports"
	"narad-backend/application/services"
	"narad-backend/interfaces/http/rest/handlers"
	"narad-backend/interfaces/http/rest/middleware"
	"narad-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	chat       *services.ChatService
	generation ports.GenerationService
	metrics    *observability.Metrics
	enableCORS bool
	logger     *zap.Logger
}

// NewRouter creates a new router instance. generation may be nil when the
// service runs without an external API key.
func NewRouter(
	chat *services.ChatService,
	generation ports.GenerationService,
	metrics *observability.Metrics,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		chat:       chat,
		generation: generation,
		metrics:    metrics,
		enableCORS: enableCORS,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}

	// CORS configuration
	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://localhost:3002",
				"http://localhost:3003",
			},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.metrics != nil {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	chatHandler := handlers.NewChatHandler(rt.chat, rt.logger)
	router.Get("/api/test", chatHandler.Test)
	router.Route("/api/ai", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
		r.Get("/sessions/{sessionID}/summary", chatHandler.SessionSummary)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"Narad AI"}`))
}

// readinessCheck reports degraded when the generation backend is down; the
// service still answers from templates in that state.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if rt.generation != nil && rt.generation.IsAvailable() {
		w.Write([]byte(`{"status":"ready","generation":"available"}`))
		return
	}
	w.Write([]byte(`{"status":"ready","generation":"unavailable"}`))
}
