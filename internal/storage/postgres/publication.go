package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"cms_backend/internal/domain"
)

const publicationColumns = `id, name, display_name, description, cover_image, status, created_at, updated_at`

type PublicationStore struct {
	db *sqlx.DB
}

func NewPublicationStore(db *sqlx.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

func (s *PublicationStore) FindActiveByName(ctx context.Context, name string) (*domain.Publication, bool, error) {
	return s.findActive(ctx, "name", name)
}

func (s *PublicationStore) FindActiveByDisplayName(ctx context.Context, displayName string) (*domain.Publication, bool, error) {
	return s.findActive(ctx, "display_name", displayName)
}

// findActive returns the oldest Active publication whose column equals value.
func (s *PublicationStore) findActive(ctx context.Context, column, value string) (*domain.Publication, bool, error) {
	query, args, err := psql.Select(publicationColumns).
		From("publications").
		Where("status = ?", active).
		Where(column+" = ?", value).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var pub domain.Publication
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &pub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &pub, true, nil
}
