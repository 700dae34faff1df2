package domain

import (
	"fmt"
	"strings"
	"time"
)

// Years outside [MinYear, MaxYear] cannot be stored as a publish date.
const (
	MinYear = 1
	MaxYear = 9999
)

// ValidYear reports whether year is within [MinYear, MaxYear].
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// ParseMonth resolves an English month name, case-insensitively.
func ParseMonth(name string) (time.Month, error) {
	trimmed := strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), trimmed) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

// PreviousMonth returns the calendar month before (year, month).
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the calendar month after (year, month).
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthRange is the half-open interval [start, end) covering one calendar month in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	ny, nm := NextMonth(year, month)
	return start, time.Date(ny, nm, 1, 0, 0, 0, 0, time.UTC)
}

// DefaultReconcileTarget is the month before now's calendar month.
func DefaultReconcileTarget(now time.Time) (int, time.Month) {
	return PreviousMonth(now.Year(), now.Month())
}

// PublishDateFields is the denormalized (year, month) projection of a publish date.
func PublishDateFields(t time.Time) (int, int) {
	u := t.UTC()
	return u.Year(), int(u.Month())
}
