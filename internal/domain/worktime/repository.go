package worktime

import (
	"context"
	"time"
)

// AttendanceRepository defines read access to clock-in/clock-out rows.
type AttendanceRepository interface {
	// GetByUserAndDate retrieves the attendance row for one worker-day,
	// or nil when the worker never clocked in that day.
	GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*AttendanceDay, error)

	// ListUserDatesSince enumerates every worker-day with a clock-in on
	// or after the given date. Candidates for the discrepancy scan.
	ListUserDatesSince(ctx context.Context, since time.Time) ([]UserDate, error)
}

// WorkSessionRepository defines read access to raw work-session rows.
type WorkSessionRepository interface {
	// ListByUserBetween retrieves sessions whose start instant falls in
	// [from, to). The caller derives the range from the local work date.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]WorkSession, error)
}

// ExclusionRepository defines access to supervisor "cleared" markers.
type ExclusionRepository interface {
	// IsCleared reports whether a cleared marker exists for the worker-day.
	IsCleared(ctx context.Context, userID string, workDate time.Time) (bool, error)

	// Clear records a cleared marker, replacing any existing one for the
	// same worker-day.
	Clear(ctx context.Context, exclusion Exclusion) (Exclusion, error)

	// Unclear removes the cleared marker for a worker-day.
	Unclear(ctx context.Context, userID string, workDate time.Time) error
}
