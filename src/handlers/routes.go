package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig carries the settings for the global middleware.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimiter    *RateLimiter // nil disables rate limiting
}

func NewRouter(h *ReportHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(EnableCORS(cfg.AllowedOrigins))
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}

	r.Get("/", h.HandleIndex)
	r.Get("/queries", h.HandleListQueries)
	r.Get("/execute_query/{id}", h.HandleExecuteQuery)
	r.Post("/custom_query", h.HandleCustomQuery)
	r.Get("/schema", h.HandleSchema)
	r.Get("/statistics", h.HandleStatistics)
	r.Get("/health", h.HandleHealth)

	return r
}
