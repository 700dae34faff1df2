package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cms_backend/internal/domain"
	"cms_backend/internal/pagination"
)

// ArticleService composes filtered, paginated article listings.
type ArticleService struct {
	publications PublicationStore
	categories   CategoryStore
	articles     ArticleStore
	now          func() time.Time
}

func NewArticleService(publications PublicationStore, categories CategoryStore, articles ArticleStore) *ArticleService {
	return &ArticleService{
		publications: publications,
		categories:   categories,
		articles:     articles,
		now:          time.Now,
	}
}

// FilterArticles ANDs every supplied dimension, counts the matches, and
// returns the requested page ordered by publish date, newest first.
func (s *ArticleService) FilterArticles(ctx context.Context, q domain.ArticleQuery) (*domain.ArticlePage, error) {
	if q.Count != nil && *q.Count < 1 {
		return nil, &domain.ClientInputError{Param: "count", Reason: "must be a positive integer"}
	}
	if q.Month != nil && (*q.Month < 1 || *q.Month > 12) {
		return nil, &domain.ClientInputError{Param: "month", Reason: "must be between 1 and 12"}
	}
	if q.Year != nil && !domain.ValidYear(*q.Year) {
		return nil, &domain.ClientInputError{Param: "year", Reason: "must be between 1 and 9999"}
	}
	if q.CategoryID == nil && q.CategoryName != "" && q.Publication == "" {
		return nil, &domain.ClientInputError{Param: "category", Reason: "publication is required when filtering by category name"}
	}

	var (
		filter  domain.ArticleFilter
		applied domain.AppliedFilters
		pub     *domain.Publication
		err     error
	)

	if q.Publication != "" {
		pub, err = resolvePublication(ctx, s.publications, q.Publication)
		if err != nil {
			return nil, err
		}
		filter.PublicationID = &pub.ID
		applied.Publication = &q.Publication
	}

	if q.MagazineID != nil {
		filter.MagazineID = q.MagazineID
		applied.MagazineID = q.MagazineID
	}

	switch {
	case q.CategoryID != nil:
		_, found, err := s.categories.FindActive(ctx, *q.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("find category: %w", err)
		}
		if !found {
			return nil, &domain.NotFoundError{Entity: "Category", Key: strconv.FormatInt(*q.CategoryID, 10)}
		}
		filter.CategoryID = q.CategoryID
		applied.CategoryID = q.CategoryID
	case q.CategoryName != "":
		cat, found, err := s.categories.FindActiveByName(ctx, pub.ID, q.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("find category by name: %w", err)
		}
		if !found {
			return nil, &domain.NotFoundError{Entity: "Category", Key: q.CategoryName}
		}
		filter.CategoryID = &cat.ID
		applied.Category = &q.CategoryName
	}

	if q.AuthorID != nil {
		filter.AuthorID = q.AuthorID
		applied.AuthorID = q.AuthorID
	}

	if q.Month != nil || q.Year != nil {
		now := s.now()
		year, month := now.Year(), int(now.Month())
		if q.Year != nil {
			year = *q.Year
		}
		if q.Month != nil {
			month = *q.Month
		}
		from, before := domain.MonthRange(year, time.Month(month))
		filter.PublishedFrom = &from
		filter.PublishedBefore = &before
		applied.Month = &month
		applied.Year = &year
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		filter.Search = search
		applied.Search = &search
	}

	total, err := s.articles.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	var page pagination.Page
	if q.Count != nil {
		page = pagination.Limit(total, *q.Count)
		applied.Count = q.Count
	} else {
		page = pagination.Paginate(total, q.Page, q.PageSize)
	}

	articles, err := s.articles.Find(ctx, filter, page.PageSize, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}

	return &domain.ArticlePage{
		Articles:   articles,
		Pagination: page,
		Filters:    applied,
	}, nil
}

// SetPublishDate is the single writer of an article's publish date and its
// year/month projection.
func (s *ArticleService) SetPublishDate(ctx context.Context, articleID int64, publishDate time.Time) error {
	ok, err := s.articles.SetPublishDate(ctx, articleID, publishDate)
	if err != nil {
		return fmt.Errorf("set publish date: %w", err)
	}
	if !ok {
		return &domain.NotFoundError{Entity: "Article", Key: strconv.FormatInt(articleID, 10)}
	}
	return nil
}
