package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"cms_backend/internal/domain"
	"cms_backend/internal/pagination"
)

const recentAssignmentsLimit = 10

// MagazineService lists and deletes issues and reports assignment coverage.
type MagazineService struct {
	publications PublicationStore
	magazines    MagazineStore
	articles     ArticleStore
	runs         RunStore
	txManager    TransactionManager
	logger       *slog.Logger
}

func NewMagazineService(
	publications PublicationStore,
	magazines MagazineStore,
	articles ArticleStore,
	runs RunStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *MagazineService {
	return &MagazineService{
		publications: publications,
		magazines:    magazines,
		articles:     articles,
		runs:         runs,
		txManager:    txManager,
		logger:       logger.With("component", "magazines"),
	}
}

func (s *MagazineService) ListMagazines(ctx context.Context, q domain.MagazineQuery) (*domain.MagazinePage, error) {
	var filter domain.MagazineFilter
	applied := map[string]any{}

	if q.Publication != "" {
		pub, err := resolvePublication(ctx, s.publications, q.Publication)
		if err != nil {
			return nil, err
		}
		filter.PublicationID = &pub.ID
		applied["publication"] = q.Publication
	}
	if q.Status != "" {
		filter.Status = q.Status
		applied["status"] = q.Status
	}
	if q.Year != nil {
		filter.Year = q.Year
		applied["year"] = *q.Year
	}
	if q.Month != "" {
		filter.Month = q.Month
		applied["month"] = q.Month
	}
	if q.Language != "" {
		filter.Language = q.Language
		applied["language"] = q.Language
	}

	total, err := s.magazines.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count magazines: %w", err)
	}

	page := pagination.Paginate(total, q.Page, q.PageSize)
	magazines, err := s.magazines.Find(ctx, filter, page.PageSize, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("find magazines: %w", err)
	}

	return &domain.MagazinePage{
		Magazines:  magazines,
		Pagination: page,
		Filters:    applied,
	}, nil
}

// DeleteMagazine removes an issue. A referenced issue is refused with a
// ConflictError unless force is set, in which case its articles are
// unassigned in the same transaction. It returns the number of articles
// that were unassigned.
func (s *MagazineService) DeleteMagazine(ctx context.Context, id int64, force bool) (int, error) {
	magazine, found, err := s.magazines.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get magazine: %w", err)
	}
	if !found {
		return 0, &domain.NotFoundError{Entity: "Magazine", Key: strconv.FormatInt(id, 10)}
	}

	references, err := s.articles.CountByMagazine(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count magazine articles: %w", err)
	}
	if references > 0 && !force {
		return 0, &domain.ConflictError{Entity: "magazine", ID: id, References: references}
	}

	var unassigned int
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if references > 0 {
			n, err := s.articles.UnassignMagazine(txCtx, id)
			if err != nil {
				return fmt.Errorf("unassign articles: %w", err)
			}
			unassigned = n
		}
		if err := s.magazines.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete magazine: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("magazine deleted",
		"magazine_id", id,
		"title", magazine.Title,
		"force", force,
		"unassigned_articles", unassigned,
	)

	return unassigned, nil
}

func (s *MagazineService) AssignmentStats(ctx context.Context) (*domain.AssignmentStats, error) {
	total, err := s.articles.Count(ctx, domain.ArticleFilter{})
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	assigned := true
	with, err := s.articles.Count(ctx, domain.ArticleFilter{Assigned: &assigned})
	if err != nil {
		return nil, fmt.Errorf("count assigned articles: %w", err)
	}

	magazines, err := s.magazines.ListActiveWithArticleCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazine counts: %w", err)
	}

	recent, err := s.articles.Find(ctx, domain.ArticleFilter{Assigned: &assigned}, recentAssignmentsLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("find recent assignments: %w", err)
	}

	stats := &domain.AssignmentStats{
		TotalArticles:     total,
		WithMagazine:      with,
		WithoutMagazine:   total - with,
		Magazines:         magazines,
		RecentAssignments: recent,
	}
	if total > 0 {
		stats.AssignmentPercentage = math.Round(float64(with)/float64(total)*10000) / 100
	}

	if s.runs != nil {
		stats.LastRun, err = s.runs.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("latest reconciliation run: %w", err)
		}
	}

	return stats, nil
}
