package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"cms_backend/internal/domain"
)

const magazineColumns = `id, title, language, direction, status, cover_image, doc_url, publication_id, year, month`

type MagazineStore struct {
	db *sqlx.DB
}

func NewMagazineStore(db *sqlx.DB) *MagazineStore {
	return &MagazineStore{db: db}
}

// Get returns the issue regardless of its status.
func (s *MagazineStore) Get(ctx context.Context, id int64) (*domain.Magazine, bool, error) {
	var m domain.Magazine
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m,
		`SELECT `+magazineColumns+` FROM magazines WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

// ListActiveByPeriod returns the Active issues of a period ordered by id.
// The month name is compared case-insensitively.
func (s *MagazineStore) ListActiveByPeriod(ctx context.Context, year int, month string) ([]domain.Magazine, error) {
	magazines := []domain.Magazine{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &magazines, `
		SELECT `+magazineColumns+` FROM magazines
		WHERE status = $1 AND year = $2 AND LOWER(month) = LOWER($3)
		ORDER BY id`,
		active, year, month,
	)
	if err != nil {
		return nil, err
	}
	return magazines, nil
}

func magazinePredicates(f domain.MagazineFilter) sq.And {
	where := sq.And{}
	if f.PublicationID != nil {
		where = append(where, sq.Eq{"publication_id": *f.PublicationID})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": f.Status})
	}
	if f.Year != nil {
		where = append(where, sq.Eq{"year": *f.Year})
	}
	if f.Month != "" {
		where = append(where, sq.Expr("LOWER(month) = LOWER(?)", f.Month))
	}
	if f.Language != "" {
		where = append(where, sq.Expr("LOWER(language) = LOWER(?)", f.Language))
	}
	return where
}

func (s *MagazineStore) Find(ctx context.Context, filter domain.MagazineFilter, limit, offset int) ([]domain.Magazine, error) {
	query, args, err := paged(psql.Select(magazineColumns).
		From("magazines").
		Where(magazinePredicates(filter)).
		OrderBy("year DESC NULLS LAST", "id DESC"), limit, offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	magazines := []domain.Magazine{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &magazines, query, args...); err != nil {
		return nil, err
	}
	return magazines, nil
}

func (s *MagazineStore) Count(ctx context.Context, filter domain.MagazineFilter) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("magazines").
		Where(magazinePredicates(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, args...)
	return count, err
}

// ListActiveWithArticleCounts pairs every Active issue with its Active article count.
func (s *MagazineStore) ListActiveWithArticleCounts(ctx context.Context) ([]domain.MagazineArticleCount, error) {
	counts := []domain.MagazineArticleCount{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &counts, `
		SELECT m.id, m.title, m.language, m.direction, m.status, m.cover_image, m.doc_url,
			m.publication_id, m.year, m.month, COUNT(a.id) AS article_count
		FROM magazines m
		LEFT JOIN articles a ON a.magazine_id = m.id AND a.status = $1
		WHERE m.status = $1
		GROUP BY m.id
		ORDER BY m.year DESC NULLS LAST, m.id DESC`,
		active,
	)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *MagazineStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM magazines WHERE id = $1`, id)
	return err
}
