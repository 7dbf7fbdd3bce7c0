package worktime

import (
	"context"
	"time"
)

// ReconciliationService defines the work-time reconciliation operations
// exposed to handlers and the cron scan.
type ReconciliationService interface {
	// ReconcileDay evaluates one worker-day. Returns ErrNoAttendance
	// when there is nothing to reconcile and ErrDayCleared when a
	// supervisor has cleared the day.
	ReconcileDay(ctx context.Context, userID string, workDate time.Time) (ReconciliationResult, error)

	// ReconcileRange evaluates a list of dates for one worker. Skip
	// conditions and per-day fetch failures are logged and skipped; the
	// rest of the range is still evaluated.
	ReconcileRange(ctx context.Context, userID string, workDates []time.Time) ([]ReconciliationResult, error)

	// ScanRecent evaluates every worker-day with attendance inside the
	// configured scan window (business days only) and returns the users
	// with at least one flagged day.
	ScanRecent(ctx context.Context) ([]FlaggedUser, error)

	// ClearDay records a supervisor override that excludes a worker-day
	// from future scans.
	ClearDay(ctx context.Context, req ClearDayRequest) error

	// UnclearDay removes a supervisor override.
	UnclearDay(ctx context.Context, userID string, workDate time.Time) error
}
