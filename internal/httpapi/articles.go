package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cms_backend/internal/domain"
)

func (h *Handler) FilterArticles(w http.ResponseWriter, r *http.Request) {
	query, err := articleQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.articles.FilterArticles(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Filtered articles retrieved successfully",
		"data":            nonNil(page.Articles),
		"pagination":      page.Pagination,
		"filters_applied": page.Filters,
	})
}

func articleQuery(r *http.Request) (domain.ArticleQuery, error) {
	q := r.URL.Query()
	query := domain.ArticleQuery{
		Publication:  queryString(q, "publication"),
		CategoryName: queryString(q, "category"),
		Search:       queryString(q, "search"),
	}

	var err error
	if query.MagazineID, err = queryInt64(q, "magazine_id"); err != nil {
		return query, err
	}
	if query.CategoryID, err = queryInt64(q, "category_id"); err != nil {
		return query, err
	}
	if query.AuthorID, err = queryInt64(q, "author_id"); err != nil {
		return query, err
	}
	if query.Month, err = queryInt(q, "month"); err != nil {
		return query, err
	}
	if query.Year, err = queryInt(q, "year"); err != nil {
		return query, err
	}
	if query.Count, err = queryInt(q, "count"); err != nil {
		return query, err
	}
	if query.Page, query.PageSize, err = pageParams(q); err != nil {
		return query, err
	}

	return query, nil
}

func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "publication_name")

	slate, err := h.trending.Trending(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	articles := nonNil(slate.Articles)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Mixed trending articles for %s retrieved successfully", name),
		"data":    articles,
		"publication": map[string]any{
			"id":           slate.Publication.ID,
			"name":         slate.Publication.Name,
			"display_name": slate.Publication.DisplayName,
		},
		"article_type": "mixed",
		"count":        len(articles),
	})
}

type publishDateRequest struct {
	PublishDate *time.Time `json:"publish_date"`
}

func (h *Handler) SetPublishDate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req publishDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublishDate == nil {
		h.writeError(w, r, &domain.ClientInputError{Param: "publish_date", Reason: "must be an RFC3339 timestamp"})
		return
	}

	if err := h.articles.SetPublishDate(r.Context(), id, *req.PublishDate); err != nil {
		h.writeError(w, r, err)
		return
	}

	year, month := domain.PublishDateFields(*req.PublishDate)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Publish date updated successfully",
		"data": map[string]any{
			"id":                 id,
			"publish_date":       req.PublishDate.UTC(),
			"publish_date_year":  year,
			"publish_date_month": month,
		},
	})
}
