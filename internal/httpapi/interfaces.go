package httpapi

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"cms_backend/internal/domain"
)

type ArticleService interface {
	FilterArticles(ctx context.Context, q domain.ArticleQuery) (*domain.ArticlePage, error)
	SetPublishDate(ctx context.Context, articleID int64, publishDate time.Time) error
}

type TrendingMixer interface {
	Trending(ctx context.Context, publicationName string) (*domain.TrendingSlate, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileReport, error)
}

type MagazineService interface {
	ListMagazines(ctx context.Context, q domain.MagazineQuery) (*domain.MagazinePage, error)
	DeleteMagazine(ctx context.Context, id int64, force bool) (int, error)
	AssignmentStats(ctx context.Context) (*domain.AssignmentStats, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
