package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"library-catalog/internal/metrics"
	"library-catalog/internal/middleware"
	"library-catalog/internal/repository"
)

// NewRouter wires the HTTP endpoints around repo.
func NewRouter(repo repository.AuthorRepository, logger zerolog.Logger) http.Handler {
	authors := NewAuthorsHandler(repo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /authors", authors.List)
	mux.Handle("GET /healthz", HealthHandler(repo))
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = mux
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	return handler
}
