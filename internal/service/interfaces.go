package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"cms_backend/internal/domain"
)

type PublicationStore interface {
	FindActiveByName(ctx context.Context, name string) (*domain.Publication, bool, error)
	FindActiveByDisplayName(ctx context.Context, displayName string) (*domain.Publication, bool, error)
}

type CategoryStore interface {
	FindActive(ctx context.Context, id int64) (*domain.Category, bool, error)
	FindActiveByName(ctx context.Context, publicationID int64, name string) (*domain.Category, bool, error)
	ListActive(ctx context.Context, publicationID int64, limit int) ([]domain.Category, error)
}

type MagazineStore interface {
	Get(ctx context.Context, id int64) (*domain.Magazine, bool, error)
	ListActiveByPeriod(ctx context.Context, year int, month string) ([]domain.Magazine, error)
	Find(ctx context.Context, filter domain.MagazineFilter, limit, offset int) ([]domain.Magazine, error)
	Count(ctx context.Context, filter domain.MagazineFilter) (int, error)
	ListActiveWithArticleCounts(ctx context.Context) ([]domain.MagazineArticleCount, error)
	Delete(ctx context.Context, id int64) error
}

type ArticleStore interface {
	Find(ctx context.Context, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, error)
	Count(ctx context.Context, filter domain.ArticleFilter) (int, error)
	AssignMagazine(ctx context.Context, articleID, magazineID int64) (bool, error)
	CountByMagazine(ctx context.Context, magazineID int64) (int, error)
	UnassignMagazine(ctx context.Context, magazineID int64) (int, error)
	SetPublishDate(ctx context.Context, articleID int64, publishDate time.Time) (bool, error)
}

type RunStore interface {
	Record(ctx context.Context, run *domain.ReconcileRun) error
	Latest(ctx context.Context) (*domain.ReconcileRun, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishAssignment(ctx context.Context, assignment domain.Assignment) error
	Close() error
}
