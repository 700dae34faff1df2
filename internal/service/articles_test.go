package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cms_backend/internal/domain"
	"cms_backend/internal/service/mocks"
	"cms_backend/internal/testutil"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	publications *mocks.MockPublicationStore
	categories   *mocks.MockCategoryStore
	articles     *mocks.MockArticleStore

	service *ArticleService
	ctx     context.Context
	pub     *domain.Publication
}

func (s *ArticleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.publications = mocks.NewMockPublicationStore(s.ctrl)
	s.categories = mocks.NewMockCategoryStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)

	s.service = NewArticleService(s.publications, s.categories, s.articles)
	s.service.now = func() time.Time {
		return time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	}

	s.pub = &domain.Publication{ID: 1, Name: "hilal-english", DisplayName: "Hilal English", Status: domain.StatusActive}
}

func (s *ArticleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}

func (s *ArticleServiceTestSuite) TestFilter_NoParameters() {
	articles := []domain.Article{{ID: 2, Title: "newer"}, {ID: 1, Title: "older"}}

	s.articles.EXPECT().Count(s.ctx, domain.ArticleFilter{}).Return(2, nil)
	s.articles.EXPECT().Find(s.ctx, domain.ArticleFilter{}, 50, 0).Return(articles, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{})

	s.NoError(err)
	s.Equal(articles, page.Articles)
	s.Equal(2, page.Pagination.TotalCount)
	s.Equal(1, page.Pagination.CurrentPage)
	s.Equal(50, page.Pagination.PageSize)
	s.Equal(domain.AppliedFilters{}, page.Filters)
}

func (s *ArticleServiceTestSuite) TestFilter_PublicationFallsBackToDisplayName() {
	s.publications.EXPECT().FindActiveByName(s.ctx, "Hilal English").Return(nil, false, nil)
	s.publications.EXPECT().FindActiveByDisplayName(s.ctx, "Hilal English").Return(s.pub, true, nil)

	filter := domain.ArticleFilter{PublicationID: testutil.Ptr(int64(1))}
	s.articles.EXPECT().Count(s.ctx, filter).Return(0, nil)
	s.articles.EXPECT().Find(s.ctx, filter, 50, 0).Return(nil, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Publication: "Hilal English"})

	s.NoError(err)
	s.Equal("Hilal English", *page.Filters.Publication)
	s.Equal(0, page.Pagination.TotalPages)
}

func (s *ArticleServiceTestSuite) TestFilter_UnknownPublication() {
	s.publications.EXPECT().FindActiveByName(s.ctx, "nope").Return(nil, false, nil)
	s.publications.EXPECT().FindActiveByDisplayName(s.ctx, "nope").Return(nil, false, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Publication: "nope"})

	s.Nil(page)
	s.True(domain.IsNotFound(err))
	s.Contains(err.Error(), "Publication 'nope'")
}

func (s *ArticleServiceTestSuite) TestFilter_CategoryNameWithinPublication() {
	s.publications.EXPECT().FindActiveByName(s.ctx, "hilal-english").Return(s.pub, true, nil)
	s.categories.EXPECT().FindActiveByName(s.ctx, int64(1), "in-focus").Return(&domain.Category{ID: 7, Name: "in-focus"}, true, nil)

	filter := domain.ArticleFilter{
		PublicationID: testutil.Ptr(int64(1)),
		CategoryID:    testutil.Ptr(int64(7)),
	}
	s.articles.EXPECT().Count(s.ctx, filter).Return(1, nil)
	s.articles.EXPECT().Find(s.ctx, filter, 50, 0).Return([]domain.Article{{ID: 1}}, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{
		Publication:  "hilal-english",
		CategoryName: "in-focus",
	})

	s.NoError(err)
	s.Equal("in-focus", *page.Filters.Category)
	s.Nil(page.Filters.CategoryID)
}

func (s *ArticleServiceTestSuite) TestFilter_CategoryNameRequiresPublication() {
	_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{CategoryName: "in-focus"})

	var ci *domain.ClientInputError
	s.Require().ErrorAs(err, &ci)
	s.Equal("category", ci.Param)
}

func (s *ArticleServiceTestSuite) TestFilter_InactiveCategoryID() {
	s.categories.EXPECT().FindActive(s.ctx, int64(9)).Return(nil, false, nil)

	_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{CategoryID: testutil.Ptr(int64(9))})

	s.True(domain.IsNotFound(err))
	s.Contains(err.Error(), "Category '9'")
}

func (s *ArticleServiceTestSuite) TestFilter_MonthDefaultsYear() {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.ArticleFilter{PublishedFrom: &from, PublishedBefore: &before}

	s.articles.EXPECT().Count(s.ctx, filter).Return(0, nil)
	s.articles.EXPECT().Find(s.ctx, filter, 50, 0).Return(nil, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Month: testutil.Ptr(3)})

	s.NoError(err)
	s.Equal(3, *page.Filters.Month)
	s.Equal(2025, *page.Filters.Year)
}

func (s *ArticleServiceTestSuite) TestFilter_YearDefaultsMonth() {
	from := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.ArticleFilter{PublishedFrom: &from, PublishedBefore: &before}

	s.articles.EXPECT().Count(s.ctx, filter).Return(0, nil)
	s.articles.EXPECT().Find(s.ctx, filter, 50, 0).Return(nil, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Year: testutil.Ptr(2023)})

	s.NoError(err)
	s.Equal(6, *page.Filters.Month)
}

func (s *ArticleServiceTestSuite) TestFilter_InvalidMonth() {
	_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Month: testutil.Ptr(13)})

	s.True(domain.IsClientInput(err))
	s.Contains(err.Error(), "month")
}

func (s *ArticleServiceTestSuite) TestFilter_YearOutOfRange() {
	for _, year := range []int{0, -5, 10000, 300000000} {
		_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Year: testutil.Ptr(year)})

		s.True(domain.IsClientInput(err), "year %d", year)
		s.Contains(err.Error(), "year")
	}
}

func (s *ArticleServiceTestSuite) TestFilter_CountOverridesPagination() {
	s.articles.EXPECT().Count(s.ctx, domain.ArticleFilter{}).Return(40, nil)
	s.articles.EXPECT().Find(s.ctx, domain.ArticleFilter{}, 5, 0).Return(make([]domain.Article, 5), nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{
		Count:    testutil.Ptr(5),
		Page:     4,
		PageSize: 10,
	})

	s.NoError(err)
	s.Equal(1, page.Pagination.CurrentPage)
	s.Equal(5, page.Pagination.PageSize)
	s.False(page.Pagination.HasNext)
	s.Equal(5, *page.Filters.Count)
	s.Len(page.Articles, 5)
}

func (s *ArticleServiceTestSuite) TestFilter_InvalidCount() {
	_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Count: testutil.Ptr(0)})

	s.True(domain.IsClientInput(err))
}

func (s *ArticleServiceTestSuite) TestFilter_PageClamping() {
	s.articles.EXPECT().Count(s.ctx, domain.ArticleFilter{}).Return(250, nil)
	s.articles.EXPECT().Find(s.ctx, domain.ArticleFilter{}, 100, 100).Return(make([]domain.Article, 100), nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Page: 2, PageSize: 500})

	s.NoError(err)
	s.Equal(100, page.Pagination.PageSize)
	s.Equal(3, page.Pagination.TotalPages)
	s.True(page.Pagination.HasNext)
	s.True(page.Pagination.HasPrevious)
}

func (s *ArticleServiceTestSuite) TestFilter_SearchIsTrimmed() {
	filter := domain.ArticleFilter{Search: "budget"}
	s.articles.EXPECT().Count(s.ctx, filter).Return(0, nil)
	s.articles.EXPECT().Find(s.ctx, filter, 50, 0).Return(nil, nil)

	page, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{Search: "  budget "})

	s.NoError(err)
	s.Equal("budget", *page.Filters.Search)
}

func (s *ArticleServiceTestSuite) TestFilter_StoreError() {
	s.articles.EXPECT().Count(s.ctx, domain.ArticleFilter{}).Return(0, errors.New("db down"))

	_, err := s.service.FilterArticles(s.ctx, domain.ArticleQuery{})

	s.Error(err)
	s.Contains(err.Error(), "count articles")
	s.False(domain.IsNotFound(err))
}

func (s *ArticleServiceTestSuite) TestSetPublishDate() {
	at := time.Date(2025, time.May, 3, 9, 0, 0, 0, time.UTC)

	s.articles.EXPECT().SetPublishDate(s.ctx, int64(5), at).Return(true, nil)
	s.NoError(s.service.SetPublishDate(s.ctx, 5, at))

	s.articles.EXPECT().SetPublishDate(s.ctx, int64(6), at).Return(false, nil)
	err := s.service.SetPublishDate(s.ctx, 6, at)
	s.True(domain.IsNotFound(err))
}
