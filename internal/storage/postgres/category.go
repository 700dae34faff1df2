package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"cms_backend/internal/domain"
)

const categoryColumns = `id, name, display_name, publication_id, status`

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) FindActive(ctx context.Context, id int64) (*domain.Category, bool, error) {
	return s.get(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND status = $2`,
		id, active,
	)
}

// FindActiveByName resolves a category key within one publication.
func (s *CategoryStore) FindActiveByName(ctx context.Context, publicationID int64, name string) (*domain.Category, bool, error) {
	return s.get(ctx,
		`SELECT `+categoryColumns+` FROM categories
		WHERE publication_id = $1 AND name = $2 AND status = $3
		ORDER BY id LIMIT 1`,
		publicationID, name, active,
	)
}

// ListActive returns the publication's first Active categories by id.
func (s *CategoryStore) ListActive(ctx context.Context, publicationID int64, limit int) ([]domain.Category, error) {
	query, args, err := paged(psql.Select(categoryColumns).
		From("categories").
		Where("publication_id = ? AND status = ?", publicationID, active).
		OrderBy("id"), limit, 0).
		ToSql()
	if err != nil {
		return nil, err
	}

	categories := []domain.Category{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) get(ctx context.Context, query string, args ...any) (*domain.Category, bool, error) {
	var cat domain.Category
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cat, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &cat, true, nil
}
