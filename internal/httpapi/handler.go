// Package httpapi exposes the editorial endpoints over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cms_backend/internal/domain"
)

type Handler struct {
	articles   ArticleService
	trending   TrendingMixer
	reconciler Reconciler
	magazines  MagazineService
	db         Pinger
	logger     *slog.Logger
}

func NewHandler(
	articles ArticleService,
	trending TrendingMixer,
	reconciler Reconciler,
	magazines MagazineService,
	db Pinger,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		articles:   articles,
		trending:   trending,
		reconciler: reconciler,
		magazines:  magazines,
		db:         db,
		logger:     logger.With("component", "http"),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

// writeError maps the error taxonomy to a status code. Unexpected errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		clientErr   *domain.ClientInputError
		notFoundErr *domain.NotFoundError
		conflictErr *domain.ConflictError
	)

	switch {
	case errors.As(err, &clientErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": clientErr.Error()})
	case errors.As(err, &notFoundErr):
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		h.writeJSON(w, http.StatusConflict, map[string]any{
			"error":      conflictErr.Error(),
			"references": conflictErr.References,
		})
	default:
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
