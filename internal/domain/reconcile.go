package domain

import "time"

const (
	StrategyExact         = "exact"
	StrategyPreviousMonth = "previous_month"
)

// ReconcileRequest overrides the target period. Missing fields default to
// the month before the current one.
type ReconcileRequest struct {
	Year   *int    `json:"year"`
	Month  *string `json:"month"`
	DryRun bool    `json:"dry_run"`
}

// AssignmentEntry logs one candidate article and the issue it matched, if any.
// Skipped marks an article another run assigned first.
type AssignmentEntry struct {
	ArticleID     int64   `json:"article_id"`
	ArticleTitle  string  `json:"article_title"`
	MagazineID    *int64  `json:"matched_magazine_id"`
	MagazineTitle *string `json:"matched_magazine_title"`
	Skipped       bool    `json:"skipped,omitempty"`
}

type StrategyReport struct {
	Strategy   string            `json:"strategy"`
	Magazines  int               `json:"magazines"`
	Candidates int               `json:"candidates"`
	Matched    int               `json:"matched"`
	Unmatched  int               `json:"unmatched"`
	Skipped    int               `json:"skipped"`
	Committed  bool              `json:"committed"`
	Error      string            `json:"error,omitempty"`
	Entries    []AssignmentEntry `json:"entries"`
}

type ReconcileReport struct {
	TargetYear    int            `json:"target_year"`
	TargetMonth   string         `json:"target_month"`
	ArticleYear   int            `json:"article_year"`
	ArticleMonth  string         `json:"article_month"`
	DryRun        bool           `json:"dry_run"`
	Exact         StrategyReport `json:"exact"`
	PreviousMonth StrategyReport `json:"previous_month"`
	Total         int            `json:"total"`
}

// Assignment is a committed article → issue link.
type Assignment struct {
	Strategy      string
	ArticleID     int64
	ArticleTitle  string
	MagazineID    int64
	MagazineTitle string
	PublicationID int64
}

// ReconcileRun is the persisted record of a non-dry reconciliation.
type ReconcileRun struct {
	ID              int64     `db:"id" json:"id"`
	TargetYear      int       `db:"target_year" json:"target_year"`
	TargetMonth     string    `db:"target_month" json:"target_month"`
	ExactMatched    int       `db:"exact_matched" json:"exact_matched"`
	PreviousMatched int       `db:"previous_matched" json:"previous_matched"`
	Failed          bool      `db:"failed" json:"failed"`
	StartedAt       time.Time `db:"started_at" json:"started_at"`
	FinishedAt      time.Time `db:"finished_at" json:"finished_at"`
}
