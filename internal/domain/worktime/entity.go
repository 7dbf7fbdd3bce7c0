package worktime

import (
	"time"
)

// WorkSession is one raw work-record row: a worker started a job and,
// usually, stopped it. Timestamps are stored in UTC; conversion to the
// workshop's wall clock happens exactly once, right after fetch.
type WorkSession struct {
	ID        string
	UserID    string
	StartedAt time.Time
	EndedAt   *time.Time // nil while the session is still running
}

// SessionWindow is a session reduced to day-local wall-clock times.
// Everything downstream of this point is zone-naive minute arithmetic.
type SessionWindow struct {
	Start string // "HH:MM"
	End   string
}

// MergedInterval is a maximal coalesced block of work time for one
// worker-day, expressed as wall-clock strings because break windows are
// wall-clock-scoped.
type MergedInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AttendanceDay is one clock-in/clock-out attendance row.
type AttendanceDay struct {
	ID       string
	UserID   string
	WorkDate time.Time // local calendar day, midnight
	ClockIn  *time.Time
	ClockOut *time.Time

	// StoredWorkMinutes is a previously cached net figure. The engine
	// recomputes from the clock times instead of trusting it, because
	// the cache may predate the count-from-08:30 policy.
	StoredWorkMinutes *int
}

// UserDate identifies one worker-day, the unit of reconciliation.
type UserDate struct {
	UserID   string
	WorkDate time.Time
}

// Exclusion is a supervisor's manual "cleared" marker for a flagged
// worker-day. Cleared days are skipped by the scan.
type Exclusion struct {
	ID        string
	UserID    string
	WorkDate  time.Time
	ClearedBy string
	Note      *string
	CreatedAt time.Time
}

// BreakOverlap records how many minutes one break window removed from a
// computed figure. Kept for audit views.
type BreakOverlap struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

type Classification string

const (
	ClassificationOK            Classification = "ok"
	ClassificationUnderReport   Classification = "under_report"
	ClassificationOverReport    Classification = "over_report"
	ClassificationMissingReport Classification = "missing_report"
)

// ReconciliationResult is the outcome for one worker-day. It is
// computed on demand and never persisted.
type ReconciliationResult struct {
	UserID            string
	WorkDate          time.Time
	AttendanceMinutes int
	WorkMinutes       int

	// DifferenceMinutes is signed: work minus attendance.
	DifferenceMinutes int

	Classification Classification

	// ExcessiveWork fires when reported work exceeds attendance by more
	// than its own threshold. It is a separate check from the
	// classification, not the same rule applied twice.
	ExcessiveWork bool

	Intervals     []MergedInterval
	BreakOverlaps []BreakOverlap
}

// FlaggedUser groups the non-ok worker-days of one user inside the scan
// window, for the management view.
type FlaggedUser struct {
	UserID string
	Days   []ReconciliationResult
}
