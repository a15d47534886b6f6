package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-roster-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-roster-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
)

// RouterConfig controls router-level behaviour.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter registers the page, API and probe routes.
func NewRouter(handler *handlers.Handler, cfg RouterConfig, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Middleware(logger, recorder))
	r.Use(handler.Recover)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.Page)
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins(cfg.AllowedOrigins),
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
		r.Get("/roster", handler.Roster)
	})

	return r
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
