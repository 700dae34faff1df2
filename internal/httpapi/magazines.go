package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cms_backend/internal/domain"
)

func (h *Handler) ListMagazines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.MagazineQuery{
		Publication: queryString(q, "publication"),
		Status:      queryString(q, "status"),
		Month:       queryString(q, "month"),
		Language:    queryString(q, "language"),
	}

	var err error
	if query.Year, err = queryInt(q, "year"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if query.Page, query.PageSize, err = pageParams(q); err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.magazines.ListMagazines(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Magazines retrieved successfully",
		"data":            nonNil(page.Magazines),
		"pagination":      page.Pagination,
		"filters_applied": page.Filters,
	})
}

func (h *Handler) DeleteMagazine(w http.ResponseWriter, r *http.Request) {
	h.deleteMagazine(w, r, false)
}

func (h *Handler) ForceDeleteMagazine(w http.ResponseWriter, r *http.Request) {
	h.deleteMagazine(w, r, true)
}

func (h *Handler) deleteMagazine(w http.ResponseWriter, r *http.Request, force bool) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	unassigned, err := h.magazines.DeleteMagazine(r.Context(), id, force)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message := "Magazine deleted successfully"
	if unassigned > 0 {
		message = fmt.Sprintf("%s. %d articles were unassigned from this magazine.", message, unassigned)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message":             message,
		"unassigned_articles": unassigned,
	})
}

func (h *Handler) MagazineAssignments(w http.ResponseWriter, r *http.Request) {
	stats, err := h.magazines.AssignmentStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Magazine assignment statistics retrieved successfully",
		"statistics": map[string]any{
			"total_articles":             stats.TotalArticles,
			"articles_with_magazines":    stats.WithMagazine,
			"articles_without_magazines": stats.WithoutMagazine,
			"assignment_percentage":      stats.AssignmentPercentage,
		},
		"magazines":          nonNil(stats.Magazines),
		"recent_assignments": nonNil(stats.RecentAssignments),
		"last_run":           stats.LastRun,
	})
}
