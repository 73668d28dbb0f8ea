package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/metrics"
	"library-catalog/internal/models"
	"library-catalog/internal/repository"
)

const (
	noAuthorsMessage   = "No authors found"
	serverErrorMessage = "Internal server error"

	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// AuthorLister is the slice of the author repository the list endpoint needs.
type AuthorLister interface {
	GetAllAuthors(ctx context.Context, opts repository.SortOptions) ([]models.Author, error)
}

// AuthorsHandler serves GET /authors.
type AuthorsHandler struct {
	Repo AuthorLister
}

func NewAuthorsHandler(repo AuthorLister) *AuthorsHandler {
	return &AuthorsHandler{Repo: repo}
}

// List responds with every author ordered by family name. The repository
// owns the ordering; the response keeps whatever order it returns.
// An empty catalog is reported as a 500 with "No authors found".
func (h *AuthorsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Repo == nil {
		requestLogger(r).Error().Msg("authors handler has no repository")
		metrics.AuthorsListed.WithLabelValues(outcomeError).Inc()
		writeText(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	authors, err := h.Repo.GetAllAuthors(r.Context(), repository.SortOptions{FamilyName: repository.Ascending})
	switch {
	case errors.Is(err, repository.ErrNoAuthors), err == nil && len(authors) == 0:
		metrics.AuthorsListed.WithLabelValues(outcomeEmpty).Inc()
		writeText(w, http.StatusInternalServerError, noAuthorsMessage)
		return
	case err != nil:
		requestLogger(r).Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("failed to retrieve authors")
		metrics.AuthorsListed.WithLabelValues(outcomeError).Inc()
		writeText(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	metrics.AuthorsListed.WithLabelValues(outcomeOK).Inc()
	writeJSON(w, http.StatusOK, authors)
}

// requestLogger returns the request's context logger, or the global logger
// when no middleware put one there.
func requestLogger(r *http.Request) *zerolog.Logger {
	logger := zerolog.Ctx(r.Context())
	if logger.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return logger
}
