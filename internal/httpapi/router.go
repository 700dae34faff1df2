package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cms_backend/internal/metrics"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.instrument)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/filter", h.FilterArticles)
			r.Get("/trending/{publication_name}", h.Trending)
			r.Put("/{id}/publish-date", h.SetPublishDate)
		})

		r.Route("/magazines", func(r chi.Router) {
			r.Get("/", h.ListMagazines)
			r.Get("/assignments", h.MagazineAssignments)
			r.Delete("/{id}", h.DeleteMagazine)
			r.Delete("/{id}/force", h.ForceDeleteMagazine)
		})

		r.Post("/reconciliation", h.Reconcile)
	})

	return r
}

// instrument records request metrics by route pattern and logs each request.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		metrics.RecordHTTP(r.Method, route, strconv.Itoa(status), elapsed.Seconds())
		h.logger.Info("http request",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"duration", elapsed,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}
