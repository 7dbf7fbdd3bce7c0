package worktime

import "errors"

// Worktime domain errors
var (
	// ErrNoAttendance marks a worker-day with no qualifying clock-in.
	// It is a defined skip condition, not a failure.
	ErrNoAttendance = errors.New("no attendance record with a clock-in for this day")

	// ErrDayCleared marks a worker-day a supervisor has manually cleared.
	ErrDayCleared = errors.New("this day has been cleared by a supervisor")

	ErrExclusionNotFound = errors.New("no cleared marker exists for this day")
)
