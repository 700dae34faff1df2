package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"cms_backend/internal/domain"
)

const articleColumns = `id, title, description, cover_image, author_id, publication_id, category_id,
	magazine_id, publish_date, publish_date_year, publish_date_month, status`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func articlePredicates(f domain.ArticleFilter) sq.And {
	where := sq.And{sq.Eq{"status": active}}

	if f.PublicationID != nil {
		where = append(where, sq.Eq{"publication_id": *f.PublicationID})
	}
	if f.CategoryID != nil {
		where = append(where, sq.Eq{"category_id": *f.CategoryID})
	}
	if f.MagazineID != nil {
		where = append(where, sq.Eq{"magazine_id": *f.MagazineID})
	}
	if f.AuthorID != nil {
		where = append(where, sq.Eq{"author_id": *f.AuthorID})
	}
	if f.Assigned != nil {
		if *f.Assigned {
			where = append(where, sq.NotEq{"magazine_id": nil})
		} else {
			where = append(where, sq.Eq{"magazine_id": nil})
		}
	}
	if f.PublishedFrom != nil {
		where = append(where, sq.GtOrEq{"publish_date": *f.PublishedFrom})
	}
	if f.PublishedBefore != nil {
		where = append(where, sq.Lt{"publish_date": *f.PublishedBefore})
	}
	if f.PublishDateYear != nil {
		where = append(where, sq.Eq{"publish_date_year": *f.PublishDateYear})
	}
	if f.PublishDateMonth != nil {
		where = append(where, sq.Eq{"publish_date_month": *f.PublishDateMonth})
	}
	if len(f.ExcludeIDs) > 0 {
		where = append(where, sq.NotEq{"id": f.ExcludeIDs})
	}
	if f.Search != "" {
		where = append(where, sq.ILike{"title": containsPattern(f.Search)})
	}

	return where
}

// Find returns Active articles matching the filter, newest publish date first.
// A non-positive limit returns every match.
func (s *ArticleStore) Find(ctx context.Context, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, error) {
	query, args, err := paged(psql.Select(articleColumns).
		From("articles").
		Where(articlePredicates(filter)).
		OrderBy("publish_date DESC NULLS LAST", "id ASC"), limit, offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	articles := []domain.Article{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) Count(ctx context.Context, filter domain.ArticleFilter) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("articles").
		Where(articlePredicates(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// AssignMagazine links an unassigned article to an issue. It reports false
// when the article is missing or already carries an issue.
func (s *ArticleStore) AssignMagazine(ctx context.Context, articleID, magazineID int64) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET magazine_id = $2 WHERE id = $1 AND magazine_id IS NULL`,
		articleID, magazineID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// CountByMagazine counts every article referencing the issue, whatever its status.
func (s *ArticleStore) CountByMagazine(ctx context.Context, magazineID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM articles WHERE magazine_id = $1`, magazineID)
	return count, err
}

func (s *ArticleStore) UnassignMagazine(ctx context.Context, magazineID int64) (int, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET magazine_id = NULL WHERE magazine_id = $1`, magazineID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// SetPublishDate writes publish_date together with its year/month projection.
func (s *ArticleStore) SetPublishDate(ctx context.Context, articleID int64, publishDate time.Time) (bool, error) {
	year, month := domain.PublishDateFields(publishDate)

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE articles
		SET publish_date = $2, publish_date_year = $3, publish_date_month = $4
		WHERE id = $1`,
		articleID, publishDate.UTC(), year, month,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
