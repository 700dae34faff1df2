package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"cms_backend/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Record(ctx context.Context, run *domain.ReconcileRun) error {
	query := `
		INSERT INTO reconciliation_runs (
			target_year, target_month, exact_matched, previous_matched, failed, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		run.TargetYear,
		run.TargetMonth,
		run.ExactMatched,
		run.PreviousMatched,
		run.Failed,
		run.StartedAt,
		run.FinishedAt,
	).Scan(&run.ID)
}

// Latest returns the most recently finished run, or nil when none was recorded.
func (s *RunStore) Latest(ctx context.Context) (*domain.ReconcileRun, error) {
	var run domain.ReconcileRun
	query := `
		SELECT id, target_year, target_month, exact_matched, previous_matched, failed, started_at, finished_at
		FROM reconciliation_runs
		ORDER BY finished_at DESC, id DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
