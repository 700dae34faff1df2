package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cms_backend/internal/config"
	"cms_backend/internal/domain"
)

// Reconciler defines the interface for reconciliation runs.
type Reconciler interface {
	Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileReport, error)
}

// Scheduler runs reconciliation for the default period on a cron schedule.
type Scheduler struct {
	reconciler Reconciler
	cron       *cron.Cron
	schedule   string
	runOnStart bool
	timeout    time.Duration
	logger     *slog.Logger
}

func NewScheduler(reconciler Reconciler, cfg config.ReconciliationConfig, logger *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", cfg.Schedule, err)
	}

	return &Scheduler{
		reconciler: reconciler,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		schedule:   cfg.Schedule,
		runOnStart: cfg.RunOnStart,
		timeout:    cfg.Timeout,
		logger:     logger.With("component", "scheduler"),
	}, nil
}

// Start blocks until ctx is cancelled, then waits for a running job to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.runReconcile(ctx) }); err != nil {
		return fmt.Errorf("add cron: %w", err)
	}

	s.logger.Info("scheduler started", "schedule", s.schedule, "location", s.cron.Location().String())

	if s.runOnStart {
		s.runReconcile(ctx)
	}

	s.cron.Start()
	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runReconcile(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report, err := s.reconciler.Reconcile(runCtx, domain.ReconcileRequest{})
	if err != nil {
		s.logger.Error("scheduled reconciliation failed", "error", err)
		return
	}

	s.logger.Info("scheduled reconciliation finished",
		"target_year", report.TargetYear,
		"target_month", report.TargetMonth,
		"total", report.Total,
	)
}
