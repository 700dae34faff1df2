package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cms_backend/internal/domain"
	"cms_backend/internal/metrics"
)

// Reconciler assigns unassigned Active articles to the Active issue of
// their publication for a target period.
type Reconciler struct {
	magazines MagazineStore
	articles  ArticleStore
	runs      RunStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewReconciler(
	magazines MagazineStore,
	articles ArticleStore,
	runs RunStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		magazines: magazines,
		articles:  articles,
		runs:      runs,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "reconciler"),
		now:       time.Now,
	}
}

type strategy struct {
	name   string
	year   int
	month  time.Month
	filter domain.ArticleFilter
}

// Reconcile runs the exact-period strategy and then the previous-month
// strategy. Each strategy commits in its own transaction; a failing strategy
// does not undo the other. The report is returned even when err is non-nil.
func (r *Reconciler) Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileReport, error) {
	startedAt := r.now()

	targetYear, targetMonth, err := r.resolveTarget(req)
	if err != nil {
		return nil, err
	}
	articleYear, articleMonth := domain.PreviousMonth(targetYear, targetMonth)

	report := &domain.ReconcileReport{
		TargetYear:   targetYear,
		TargetMonth:  targetMonth.String(),
		ArticleYear:  articleYear,
		ArticleMonth: articleMonth.String(),
		DryRun:       req.DryRun,
	}

	logger := r.logger.With(
		"target_year", targetYear,
		"target_month", targetMonth.String(),
		"dry_run", req.DryRun,
	)
	logger.Info("starting reconciliation",
		"article_year", articleYear,
		"article_month", articleMonth.String(),
	)

	var errs []error

	unassigned := false
	monthNum := int(targetMonth)
	exact, exactMatched, err := r.runStrategy(ctx, logger, strategy{
		name:  domain.StrategyExact,
		year:  targetYear,
		month: targetMonth,
		filter: domain.ArticleFilter{
			Assigned:         &unassigned,
			PublishDateYear:  &targetYear,
			PublishDateMonth: &monthNum,
		},
	}, req.DryRun)
	if err != nil {
		errs = append(errs, fmt.Errorf("exact strategy: %w", err))
	}
	report.Exact = exact

	from, before := domain.MonthRange(articleYear, articleMonth)
	previous, _, err := r.runStrategy(ctx, logger, strategy{
		name:  domain.StrategyPreviousMonth,
		year:  targetYear,
		month: targetMonth,
		filter: domain.ArticleFilter{
			Assigned:        &unassigned,
			PublishedFrom:   &from,
			PublishedBefore: &before,
			ExcludeIDs:      exactMatched,
		},
	}, req.DryRun)
	if err != nil {
		errs = append(errs, fmt.Errorf("previous month strategy: %w", err))
	}
	report.PreviousMonth = previous

	report.Total = countedMatches(report.Exact, req.DryRun) + countedMatches(report.PreviousMonth, req.DryRun)

	if req.DryRun {
		metrics.RecordReconcileRun("dry_run")
	} else {
		if err := r.recordRun(ctx, report, len(errs) > 0, startedAt); err != nil {
			errs = append(errs, fmt.Errorf("record run: %w", err))
		}
		if len(errs) > 0 {
			metrics.RecordReconcileRun("failed")
		} else {
			metrics.RecordReconcileRun("ok")
		}
	}

	logger.Info("reconciliation completed",
		"exact", report.Exact.Matched,
		"previous_month", report.PreviousMonth.Matched,
		"total", report.Total,
		"duration", time.Since(startedAt),
	)

	return report, errors.Join(errs...)
}

func (r *Reconciler) resolveTarget(req domain.ReconcileRequest) (int, time.Month, error) {
	year, month := domain.DefaultReconcileTarget(r.now())

	if req.Year != nil {
		if !domain.ValidYear(*req.Year) {
			return 0, 0, &domain.ClientInputError{Param: "year", Reason: "must be between 1 and 9999"}
		}
		year = *req.Year
	}
	if req.Month != nil && strings.TrimSpace(*req.Month) != "" {
		m, err := domain.ParseMonth(*req.Month)
		if err != nil {
			return 0, 0, &domain.ClientInputError{Param: "month", Reason: "must be a full month name"}
		}
		month = m
	}

	return year, month, nil
}

// runStrategy returns the strategy report and the ids of articles it matched.
func (r *Reconciler) runStrategy(ctx context.Context, logger *slog.Logger, s strategy, dryRun bool) (domain.StrategyReport, []int64, error) {
	report := domain.StrategyReport{Strategy: s.name, Entries: []domain.AssignmentEntry{}}
	logger = logger.With("strategy", s.name)

	magazines, err := r.magazines.ListActiveByPeriod(ctx, s.year, s.month.String())
	if err != nil {
		report.Error = err.Error()
		return report, nil, fmt.Errorf("list magazines: %w", err)
	}
	report.Magazines = len(magazines)
	if len(magazines) == 0 {
		logger.Warn("no active magazines found for period")
		return report, nil, nil
	}

	candidates, err := r.articles.Find(ctx, s.filter, 0, 0)
	if err != nil {
		report.Error = err.Error()
		return report, nil, fmt.Errorf("find candidates: %w", err)
	}
	report.Candidates = len(candidates)
	logger.Info("found candidates", "magazines", len(magazines), "articles", len(candidates))

	issues := issueByPublication(magazines)
	var planned []domain.Assignment
	for _, article := range candidates {
		entry := domain.AssignmentEntry{ArticleID: article.ID, ArticleTitle: article.Title}

		var issue *domain.Magazine
		if article.PublicationID != nil {
			issue = issues[*article.PublicationID]
		}
		if issue == nil {
			report.Unmatched++
			report.Entries = append(report.Entries, entry)
			logger.Warn("no matching magazine for article",
				"article_id", article.ID,
				"title", article.Title,
				"publication_id", article.PublicationID,
			)
			continue
		}

		entry.MagazineID = &issue.ID
		entry.MagazineTitle = &issue.Title
		report.Entries = append(report.Entries, entry)
		planned = append(planned, domain.Assignment{
			Strategy:      s.name,
			ArticleID:     article.ID,
			ArticleTitle:  article.Title,
			MagazineID:    issue.ID,
			MagazineTitle: issue.Title,
			PublicationID: *article.PublicationID,
		})
	}
	report.Matched = len(planned)

	var matchedIDs []int64
	for _, a := range planned {
		matchedIDs = append(matchedIDs, a.ArticleID)
	}

	if dryRun || len(planned) == 0 {
		return report, matchedIDs, nil
	}

	var applied []domain.Assignment
	skipped := make(map[int64]bool)
	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		applied = applied[:0]
		clear(skipped)
		for _, a := range planned {
			ok, err := r.articles.AssignMagazine(txCtx, a.ArticleID, a.MagazineID)
			if err != nil {
				return fmt.Errorf("assign article %d: %w", a.ArticleID, err)
			}
			if !ok {
				logger.Warn("article already assigned, skipping", "article_id", a.ArticleID)
				skipped[a.ArticleID] = true
				continue
			}
			applied = append(applied, a)
		}
		return nil
	})
	if err != nil {
		// nothing was committed, so the next strategy may still pick these up
		report.Error = err.Error()
		logger.Error("strategy rolled back", "error", err)
		return report, nil, err
	}

	report.Committed = true
	report.Matched = len(applied)
	report.Skipped = len(skipped)
	for i := range report.Entries {
		if skipped[report.Entries[i].ArticleID] {
			report.Entries[i].MagazineID = nil
			report.Entries[i].MagazineTitle = nil
			report.Entries[i].Skipped = true
		}
	}
	metrics.RecordStrategy(s.name, len(applied), report.Unmatched)

	for _, a := range applied {
		logger.Debug("assigned magazine", "article", a.ArticleTitle, "magazine", a.MagazineTitle)
	}
	r.publish(ctx, logger, applied)

	return report, matchedIDs, nil
}

// issueByPublication picks, per publication, the issue with the lowest id.
func issueByPublication(magazines []domain.Magazine) map[int64]*domain.Magazine {
	issues := make(map[int64]*domain.Magazine, len(magazines))
	for i := range magazines {
		m := &magazines[i]
		if m.PublicationID == nil {
			continue
		}
		if current, ok := issues[*m.PublicationID]; !ok || m.ID < current.ID {
			issues[*m.PublicationID] = m
		}
	}
	return issues
}

func (r *Reconciler) publish(ctx context.Context, logger *slog.Logger, applied []domain.Assignment) {
	if r.publisher == nil {
		return
	}
	for _, a := range applied {
		if err := r.publisher.PublishAssignment(ctx, a); err != nil {
			metrics.RecordAssignmentEvent("error")
			logger.Error("failed to publish assignment", "article_id", a.ArticleID, "error", err)
			continue
		}
		metrics.RecordAssignmentEvent("ok")
	}
}

func (r *Reconciler) recordRun(ctx context.Context, report *domain.ReconcileReport, failed bool, startedAt time.Time) error {
	if r.runs == nil {
		return nil
	}
	return r.runs.Record(ctx, &domain.ReconcileRun{
		TargetYear:      report.TargetYear,
		TargetMonth:     report.TargetMonth,
		ExactMatched:    countedMatches(report.Exact, false),
		PreviousMatched: countedMatches(report.PreviousMonth, false),
		Failed:          failed,
		StartedAt:       startedAt,
		FinishedAt:      r.now(),
	})
}

// countedMatches is what a strategy contributes to the run total: planned
// matches for a dry run, committed ones otherwise.
func countedMatches(s domain.StrategyReport, dryRun bool) int {
	if dryRun || s.Committed {
		return s.Matched
	}
	return 0
}
