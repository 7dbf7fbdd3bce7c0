package worktime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/google/uuid"
)

// Options carries the tunable policy values of the engine. Each check
// keeps its own threshold; the observed defaults are close but were
// never unified in the field, so they stay independent.
type Options struct {
	// MismatchThresholdMinutes flags a day when |work - attendance|
	// exceeds it.
	MismatchThresholdMinutes int

	// ExcessWorkThresholdMinutes flags a day when work exceeds
	// attendance by more than it (signed, one direction only).
	ExcessWorkThresholdMinutes int

	// MergeGapToleranceMinutes coalesces sessions separated by at most
	// this many minutes.
	MergeGapToleranceMinutes int

	// ScanWindowDays bounds how far back ScanRecent looks.
	ScanWindowDays int

	// Location is the workshop wall-clock zone. All timestamps are
	// converted into it exactly once, right after fetch.
	Location *time.Location

	// Now is injectable for tests; open sessions end at Now.
	Now func() time.Time
}

const (
	defaultMismatchThreshold = 60
	defaultExcessThreshold   = 60
	defaultScanWindowDays    = 14
)

type ReconciliationServiceImpl struct {
	attendanceRepo worktime.AttendanceRepository
	sessionRepo    worktime.WorkSessionRepository
	breakRepo      breakwindow.BreakWindowRepository
	exclusionRepo  worktime.ExclusionRepository
	opts           Options
}

func NewReconciliationService(
	attendanceRepo worktime.AttendanceRepository,
	sessionRepo worktime.WorkSessionRepository,
	breakRepo breakwindow.BreakWindowRepository,
	exclusionRepo worktime.ExclusionRepository,
	opts Options,
) worktime.ReconciliationService {
	if opts.MismatchThresholdMinutes <= 0 {
		opts.MismatchThresholdMinutes = defaultMismatchThreshold
	}
	if opts.ExcessWorkThresholdMinutes <= 0 {
		opts.ExcessWorkThresholdMinutes = defaultExcessThreshold
	}
	if opts.MergeGapToleranceMinutes < 0 {
		opts.MergeGapToleranceMinutes = DefaultMergeGapMinutes
	}
	if opts.ScanWindowDays <= 0 {
		opts.ScanWindowDays = defaultScanWindowDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ReconciliationServiceImpl{
		attendanceRepo: attendanceRepo,
		sessionRepo:    sessionRepo,
		breakRepo:      breakRepo,
		exclusionRepo:  exclusionRepo,
		opts:           opts,
	}
}

// ReconcileDay implements worktime.ReconciliationService.
func (s *ReconciliationServiceImpl) ReconcileDay(ctx context.Context, userID string, workDate time.Time) (worktime.ReconciliationResult, error) {
	cleared, err := s.exclusionRepo.IsCleared(ctx, userID, workDate)
	if err != nil {
		return worktime.ReconciliationResult{}, fmt.Errorf("failed to check cleared marker: %w", err)
	}
	if cleared {
		return worktime.ReconciliationResult{}, worktime.ErrDayCleared
	}

	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, workDate)
	if err != nil {
		return worktime.ReconciliationResult{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if att == nil || att.ClockIn == nil {
		// No attendance means there is nothing to reconcile against.
		return worktime.ReconciliationResult{}, worktime.ErrNoAttendance
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return worktime.ReconciliationResult{}, err
	}

	attendanceMinutes := s.attendanceMinutes(att, catalog)

	sessions, err := s.fetchSessions(ctx, userID, workDate)
	if err != nil {
		return worktime.ReconciliationResult{}, err
	}

	windows := s.sessionWindows(sessions)
	intervals := MergeSessions(windows, s.opts.MergeGapToleranceMinutes)

	workMinutes := 0
	var breakOverlaps []worktime.BreakOverlap
	for _, interval := range intervals {
		minutes, overlaps := DeductBreaks(interval, catalog)
		workMinutes += minutes
		breakOverlaps = append(breakOverlaps, overlaps...)
	}

	diff := workMinutes - attendanceMinutes

	classification := worktime.ClassificationOK
	switch {
	case len(sessions) == 0:
		classification = worktime.ClassificationMissingReport
	case diff < -s.opts.MismatchThresholdMinutes:
		classification = worktime.ClassificationUnderReport
	case diff > s.opts.MismatchThresholdMinutes:
		classification = worktime.ClassificationOverReport
	}

	return worktime.ReconciliationResult{
		UserID:            userID,
		WorkDate:          workDate,
		AttendanceMinutes: attendanceMinutes,
		WorkMinutes:       workMinutes,
		DifferenceMinutes: diff,
		Classification:    classification,
		ExcessiveWork:     diff > s.opts.ExcessWorkThresholdMinutes,
		Intervals:         intervals,
		BreakOverlaps:     breakOverlaps,
	}, nil
}

// ReconcileRange implements worktime.ReconciliationService.
func (s *ReconciliationServiceImpl) ReconcileRange(ctx context.Context, userID string, workDates []time.Time) ([]worktime.ReconciliationResult, error) {
	results := make([]worktime.ReconciliationResult, 0, len(workDates))
	for _, date := range workDates {
		result, err := s.ReconcileDay(ctx, userID, date)
		if err != nil {
			if errors.Is(err, worktime.ErrNoAttendance) || errors.Is(err, worktime.ErrDayCleared) {
				continue
			}
			// A fetch failure on one day must not abort the rest of the
			// range.
			slog.Error("Failed to reconcile day",
				"user_id", userID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// ScanRecent implements worktime.ReconciliationService.
func (s *ReconciliationServiceImpl) ScanRecent(ctx context.Context) ([]worktime.FlaggedUser, error) {
	since := s.today().AddDate(0, 0, -s.opts.ScanWindowDays)

	candidates, err := s.attendanceRepo.ListUserDatesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan candidates: %w", err)
	}

	byUser := make(map[string]*worktime.FlaggedUser)
	var order []string

	for _, candidate := range candidates {
		weekday := candidate.WorkDate.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}

		result, err := s.ReconcileDay(ctx, candidate.UserID, candidate.WorkDate)
		if err != nil {
			if errors.Is(err, worktime.ErrNoAttendance) || errors.Is(err, worktime.ErrDayCleared) {
				continue
			}
			slog.Error("Scan: failed to reconcile day",
				"user_id", candidate.UserID,
				"date", candidate.WorkDate.Format("2006-01-02"),
				"error", err)
			continue
		}

		if result.Classification == worktime.ClassificationOK && !result.ExcessiveWork {
			continue
		}

		flagged, ok := byUser[candidate.UserID]
		if !ok {
			flagged = &worktime.FlaggedUser{UserID: candidate.UserID}
			byUser[candidate.UserID] = flagged
			order = append(order, candidate.UserID)
		}
		flagged.Days = append(flagged.Days, result)
	}

	users := make([]worktime.FlaggedUser, 0, len(order))
	for _, userID := range order {
		users = append(users, *byUser[userID])
	}
	return users, nil
}

// ClearDay implements worktime.ReconciliationService.
func (s *ReconciliationServiceImpl) ClearDay(ctx context.Context, req worktime.ClearDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	workDate, err := time.ParseInLocation("2006-01-02", req.Date, s.opts.Location)
	if err != nil {
		return fmt.Errorf("failed to parse work date: %w", err)
	}

	_, err = s.exclusionRepo.Clear(ctx, worktime.Exclusion{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		WorkDate:  workDate,
		ClearedBy: req.ClearedBy,
		Note:      req.Note,
	})
	if err != nil {
		return fmt.Errorf("failed to record cleared marker: %w", err)
	}
	return nil
}

// UnclearDay implements worktime.ReconciliationService.
func (s *ReconciliationServiceImpl) UnclearDay(ctx context.Context, userID string, workDate time.Time) error {
	if err := s.exclusionRepo.Unclear(ctx, userID, workDate); err != nil {
		if errors.Is(err, worktime.ErrExclusionNotFound) {
			return worktime.ErrExclusionNotFound
		}
		return fmt.Errorf("failed to remove cleared marker: %w", err)
	}
	return nil
}

func (s *ReconciliationServiceImpl) loadCatalog(ctx context.Context) (breakwindow.Catalog, error) {
	// Queried fresh per evaluation so admin edits take effect on the
	// next run.
	rows, err := s.breakRepo.ListActive(ctx)
	if err != nil {
		return breakwindow.Catalog{}, fmt.Errorf("failed to load break windows: %w", err)
	}
	return breakwindow.NewCatalog(rows), nil
}

// attendanceMinutes recomputes the net attended figure from the clock
// pair. AttendanceDay.StoredWorkMinutes is deliberately ignored: the
// cached value may predate the count-from-08:30 policy.
func (s *ReconciliationServiceImpl) attendanceMinutes(att *worktime.AttendanceDay, catalog breakwindow.Catalog) int {
	if att.ClockIn == nil || att.ClockOut == nil {
		return 0
	}
	in := att.ClockIn.In(s.opts.Location).Format("15:04")
	out := att.ClockOut.In(s.opts.Location).Format("15:04")
	return ComputeAttendanceMinutes(in, out, catalog, true)
}

// fetchSessions returns the raw sessions whose start instant falls on
// the given local work date.
func (s *ReconciliationServiceImpl) fetchSessions(ctx context.Context, userID string, workDate time.Time) ([]worktime.WorkSession, error) {
	from := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), 0, 0, 0, 0, s.opts.Location)
	to := from.AddDate(0, 0, 1)

	sessions, err := s.sessionRepo.ListByUserBetween(ctx, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	return sessions, nil
}

// sessionWindows is the single conversion boundary from absolute
// timestamps to wall-clock windows. Open sessions end at now.
func (s *ReconciliationServiceImpl) sessionWindows(sessions []worktime.WorkSession) []worktime.SessionWindow {
	windows := make([]worktime.SessionWindow, 0, len(sessions))
	for _, session := range sessions {
		end := s.opts.Now()
		if session.EndedAt != nil {
			end = *session.EndedAt
		}
		windows = append(windows, worktime.SessionWindow{
			Start: session.StartedAt.In(s.opts.Location).Format("15:04"),
			End:   end.In(s.opts.Location).Format("15:04"),
		})
	}
	return windows
}

func (s *ReconciliationServiceImpl) today() time.Time {
	now := s.opts.Now().In(s.opts.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.opts.Location)
}
