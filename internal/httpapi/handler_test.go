package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cms_backend/internal/domain"
	"cms_backend/internal/httpapi/mocks"
	"cms_backend/internal/pagination"
	"cms_backend/internal/testutil"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles   *mocks.MockArticleService
	trending   *mocks.MockTrendingMixer
	reconciler *mocks.MockReconciler
	magazines  *mocks.MockMagazineService
	db         *mocks.MockPinger

	router http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleService(s.ctrl)
	s.trending = mocks.NewMockTrendingMixer(s.ctrl)
	s.reconciler = mocks.NewMockReconciler(s.ctrl)
	s.magazines = mocks.NewMockMagazineService(s.ctrl)
	s.db = mocks.NewMockPinger(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewRouter(NewHandler(s.articles, s.trending, s.reconciler, s.magazines, s.db, logger))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func (s *HandlerTestSuite) TestFilterArticles_ParsesQuery() {
	s.articles.EXPECT().FilterArticles(gomock.Any(), domain.ArticleQuery{
		Publication:  "Hilal English",
		CategoryName: "in-focus",
		MagazineID:   testutil.Ptr(int64(4)),
		Month:        testutil.Ptr(2),
		Year:         testutil.Ptr(2025),
		Search:       "army",
		Page:         2,
		PageSize:     10,
	}).Return(&domain.ArticlePage{
		Articles:   []domain.Article{{ID: 1, Title: "Army day"}},
		Pagination: pagination.Paginate(11, 2, 10),
		Filters:    domain.AppliedFilters{Month: testutil.Ptr(2), Year: testutil.Ptr(2025)},
	}, nil)

	rec, body := s.do(http.MethodGet,
		"/api/articles/filter?publication=Hilal+English&category=in-focus&magazine_id=4&month=2&year=2025&search=army&page=2&page_size=10", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Filtered articles retrieved successfully", body["message"])
	s.Len(body["data"], 1)

	page := body["pagination"].(map[string]any)
	s.Equal(float64(2), page["current_page"])
	s.Equal(float64(2), page["total_pages"])
	s.Equal(false, page["has_next"])
	s.NotContains(page, "Offset")

	filters := body["filters_applied"].(map[string]any)
	s.Equal(float64(2), filters["month"])
	s.Nil(filters["publication"])
}

func (s *HandlerTestSuite) TestFilterArticles_NonIntegerParam() {
	rec, body := s.do(http.MethodGet, "/api/articles/filter?category_id=abc", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid category_id parameter: must be an integer", body["error"])
}

func (s *HandlerTestSuite) TestFilterArticles_EmptyDataIsArray() {
	s.articles.EXPECT().FilterArticles(gomock.Any(), domain.ArticleQuery{Page: 1}).Return(&domain.ArticlePage{
		Pagination: pagination.Paginate(0, 1, 0),
	}, nil)

	rec, body := s.do(http.MethodGet, "/api/articles/filter", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]any{}, body["data"])
}

func (s *HandlerTestSuite) TestFilterArticles_NotFound() {
	s.articles.EXPECT().FilterArticles(gomock.Any(), gomock.Any()).
		Return(nil, &domain.NotFoundError{Entity: "Publication", Key: "ghost"})

	rec, body := s.do(http.MethodGet, "/api/articles/filter?publication=ghost", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Publication 'ghost' not found or inactive", body["error"])
}

func (s *HandlerTestSuite) TestFilterArticles_InternalErrorHidesDetail() {
	s.articles.EXPECT().FilterArticles(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: relation does not exist"))

	rec, body := s.do(http.MethodGet, "/api/articles/filter", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("internal server error", body["error"])
}

func (s *HandlerTestSuite) TestTrending() {
	s.trending.EXPECT().Trending(gomock.Any(), "hilal-english").Return(&domain.TrendingSlate{
		Publication: domain.Publication{ID: 1, Name: "hilal-english", DisplayName: "Hilal English"},
		Articles:    []domain.Article{{ID: 3}, {ID: 2}, {ID: 1}},
	}, nil)

	rec, body := s.do(http.MethodGet, "/api/articles/trending/hilal-english", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(3), body["count"])
	s.Equal("mixed", body["article_type"])
	pub := body["publication"].(map[string]any)
	s.Equal("Hilal English", pub["display_name"])
}

func (s *HandlerTestSuite) TestSetPublishDate() {
	at := time.Date(2025, 4, 30, 22, 0, 0, 0, time.UTC)
	s.articles.EXPECT().SetPublishDate(gomock.Any(), int64(12), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, got time.Time) error {
			s.True(at.Equal(got))
			return nil
		},
	)

	rec, body := s.do(http.MethodPut, "/api/articles/12/publish-date", `{"publish_date":"2025-05-01T03:00:00+05:00"}`)

	s.Equal(http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	s.Equal(float64(4), data["publish_date_month"])
}

func (s *HandlerTestSuite) TestSetPublishDate_BadBody() {
	rec, body := s.do(http.MethodPut, "/api/articles/12/publish-date", `{"publish_date":"yesterday"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(body["error"], "publish_date")
}

func (s *HandlerTestSuite) TestReconcile_DryRun() {
	s.reconciler.EXPECT().Reconcile(gomock.Any(), domain.ReconcileRequest{
		Year:   testutil.Ptr(2025),
		Month:  testutil.Ptr("March"),
		DryRun: true,
	}).Return(&domain.ReconcileReport{TargetYear: 2025, TargetMonth: "March", DryRun: true, Total: 5}, nil)

	rec, body := s.do(http.MethodPost, "/api/reconciliation", `{"year":2025,"month":"March","dry_run":true}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Magazine assignment dry run completed", body["message"])
	s.Equal(float64(5), body["data"].(map[string]any)["total"])
}

func (s *HandlerTestSuite) TestReconcile_EmptyBodyUsesDefaults() {
	s.reconciler.EXPECT().Reconcile(gomock.Any(), domain.ReconcileRequest{}).
		Return(&domain.ReconcileReport{}, nil)

	rec, _ := s.do(http.MethodPost, "/api/reconciliation", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestReconcile_PartialFailureReturnsReport() {
	s.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(
		&domain.ReconcileReport{Exact: domain.StrategyReport{Error: "deadlock"}},
		errors.New("exact strategy: deadlock"),
	)

	rec, body := s.do(http.MethodPost, "/api/reconciliation", `{}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotNil(body["data"])
}

func (s *HandlerTestSuite) TestReconcile_InvalidMonth() {
	s.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ClientInputError{Param: "month", Reason: "must be a full month name"})

	rec, _ := s.do(http.MethodPost, "/api/reconciliation", `{"month":"Smarch"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestListMagazines() {
	s.magazines.EXPECT().ListMagazines(gomock.Any(), domain.MagazineQuery{
		Status:   "Active",
		Year:     testutil.Ptr(2024),
		Page:     1,
		PageSize: 0,
	}).Return(&domain.MagazinePage{
		Pagination: pagination.Paginate(0, 1, 0),
		Filters:    map[string]any{"status": "Active", "year": 2024},
	}, nil)

	rec, body := s.do(http.MethodGet, "/api/magazines?status=Active&year=2024", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]any{}, body["data"])
	s.Equal("Active", body["filters_applied"].(map[string]any)["status"])
}

func (s *HandlerTestSuite) TestListMagazines_BadYear() {
	rec, _ := s.do(http.MethodGet, "/api/magazines?year=twenty", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteMagazine_Conflict() {
	s.magazines.EXPECT().DeleteMagazine(gomock.Any(), int64(7), false).
		Return(0, &domain.ConflictError{Entity: "magazine", ID: 7, References: 3})

	rec, body := s.do(http.MethodDelete, "/api/magazines/7", "")

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(float64(3), body["references"])
}

func (s *HandlerTestSuite) TestForceDeleteMagazine() {
	s.magazines.EXPECT().DeleteMagazine(gomock.Any(), int64(7), true).Return(3, nil)

	rec, body := s.do(http.MethodDelete, "/api/magazines/7/force", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Magazine deleted successfully. 3 articles were unassigned from this magazine.", body["message"])
}

func (s *HandlerTestSuite) TestDeleteMagazine_BadID() {
	rec, _ := s.do(http.MethodDelete, "/api/magazines/seven", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestMagazineAssignments() {
	s.magazines.EXPECT().AssignmentStats(gomock.Any()).Return(&domain.AssignmentStats{
		TotalArticles:        4,
		WithMagazine:         1,
		WithoutMagazine:      3,
		AssignmentPercentage: 25,
	}, nil)

	rec, body := s.do(http.MethodGet, "/api/magazines/assignments", "")

	s.Equal(http.StatusOK, rec.Code)
	stats := body["statistics"].(map[string]any)
	s.Equal(float64(25), stats["assignment_percentage"])
	s.Equal([]any{}, body["recent_assignments"])
	s.Nil(body["last_run"])
}

func (s *HandlerTestSuite) TestHealth() {
	s.db.EXPECT().PingContext(gomock.Any()).Return(nil)
	rec, body := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", body["status"])

	s.db.EXPECT().PingContext(gomock.Any()).Return(errors.New("refused"))
	rec, _ = s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestMetricsEndpoint() {
	s.db.EXPECT().PingContext(gomock.Any()).Return(nil)
	s.do(http.MethodGet, "/healthz", "")

	rec, _ := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "cms_http_requests_total")
}
