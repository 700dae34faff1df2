package service

import (
	"context"
	"fmt"
	"log/slog"

	"cms_backend/internal/config"
	"cms_backend/internal/domain"
)

// TrendingMixer builds the category-diverse slate shown on a publication's
// landing widget.
type TrendingMixer struct {
	publications PublicationStore
	categories   CategoryStore
	articles     ArticleStore
	config       config.TrendingConfig
	logger       *slog.Logger
}

func NewTrendingMixer(
	publications PublicationStore,
	categories CategoryStore,
	articles ArticleStore,
	logger *slog.Logger,
	cfg config.TrendingConfig,
) *TrendingMixer {
	return &TrendingMixer{
		publications: publications,
		categories:   categories,
		articles:     articles,
		config:       cfg,
		logger:       logger.With("component", "trending"),
	}
}

func (m *TrendingMixer) Trending(ctx context.Context, publicationName string) (*domain.TrendingSlate, error) {
	pub, err := resolvePublication(ctx, m.publications, publicationName)
	if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if layout, ok := m.layoutFor(publicationName, pub); ok {
		articles, err = m.fromLayout(ctx, pub, layout)
	} else {
		articles, err = m.fromFirstCategories(ctx, pub)
	}
	if err != nil {
		return nil, err
	}

	if len(articles) > m.config.Size {
		articles = articles[:m.config.Size]
	}

	m.logger.Debug("built trending slate", "publication", pub.Name, "count", len(articles))

	return &domain.TrendingSlate{Publication: *pub, Articles: articles}, nil
}

// layoutFor matches the requested name, the internal name and the display
// name, in that order, against the configured layouts.
func (m *TrendingMixer) layoutFor(requested string, pub *domain.Publication) (domain.TrendingLayout, bool) {
	for _, name := range []string{requested, pub.Name, pub.DisplayName} {
		slug := domain.Slug(name)
		if slug == "" {
			continue
		}
		for _, layout := range m.config.Layouts {
			for _, p := range layout.Publications {
				if domain.Slug(p) == slug {
					return layout, true
				}
			}
		}
	}
	return domain.TrendingLayout{}, false
}

func (m *TrendingMixer) fromLayout(ctx context.Context, pub *domain.Publication, layout domain.TrendingLayout) ([]domain.Article, error) {
	var articles []domain.Article
	for _, slot := range layout.Slots {
		cat, err := m.firstCategory(ctx, pub.ID, slot.Keys)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			continue
		}

		quota := slot.Quota
		if quota == 0 {
			quota = m.config.PerCategory
		}
		latest, err := m.latestInCategory(ctx, pub.ID, cat.ID, quota)
		if err != nil {
			return nil, err
		}
		articles = append(articles, latest...)
	}

	if layout.Backfill {
		return m.backfill(ctx, pub.ID, articles)
	}
	return articles, nil
}

func (m *TrendingMixer) fromFirstCategories(ctx context.Context, pub *domain.Publication) ([]domain.Article, error) {
	categories, err := m.categories.ListActive(ctx, pub.ID, m.config.FallbackCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var articles []domain.Article
	for _, cat := range categories {
		latest, err := m.latestInCategory(ctx, pub.ID, cat.ID, m.config.PerCategory)
		if err != nil {
			return nil, err
		}
		articles = append(articles, latest...)
	}

	return m.backfill(ctx, pub.ID, articles)
}

// firstCategory returns the first key that names an Active category of the
// publication, or nil when none does.
func (m *TrendingMixer) firstCategory(ctx context.Context, publicationID int64, keys []string) (*domain.Category, error) {
	for _, key := range keys {
		cat, found, err := m.categories.FindActiveByName(ctx, publicationID, key)
		if err != nil {
			return nil, fmt.Errorf("find category %s: %w", key, err)
		}
		if found {
			return cat, nil
		}
	}
	return nil, nil
}

func (m *TrendingMixer) latestInCategory(ctx context.Context, publicationID, categoryID int64, limit int) ([]domain.Article, error) {
	articles, err := m.articles.Find(ctx, domain.ArticleFilter{
		PublicationID: &publicationID,
		CategoryID:    &categoryID,
	}, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("find articles in category %d: %w", categoryID, err)
	}
	return articles, nil
}

// backfill tops the slate up with the publication's latest articles not yet selected.
func (m *TrendingMixer) backfill(ctx context.Context, publicationID int64, articles []domain.Article) ([]domain.Article, error) {
	remaining := m.config.Size - len(articles)
	if remaining <= 0 {
		return articles, nil
	}

	exclude := make([]int64, 0, len(articles))
	for _, a := range articles {
		exclude = append(exclude, a.ID)
	}

	extra, err := m.articles.Find(ctx, domain.ArticleFilter{
		PublicationID: &publicationID,
		ExcludeIDs:    exclude,
	}, remaining, 0)
	if err != nil {
		return nil, fmt.Errorf("backfill articles: %w", err)
	}
	return append(articles, extra...), nil
}
