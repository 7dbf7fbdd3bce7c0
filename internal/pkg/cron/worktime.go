package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
)

type ReconciliationJobs struct {
	reconciliationSvc worktime.ReconciliationService
	scanInterval      time.Duration
}

func NewReconciliationJobs(reconciliationSvc worktime.ReconciliationService, scanInterval time.Duration) *ReconciliationJobs {
	return &ReconciliationJobs{
		reconciliationSvc: reconciliationSvc,
		scanInterval:      scanInterval,
	}
}

func (j *ReconciliationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("worktime_discrepancy_scan", j.scanInterval, j.ScanDiscrepancies)
}

// ScanDiscrepancies reconciles every user's recent workdays and logs a
// summary of the flagged ones. The detailed results stay available
// through the flagged endpoint.
func (j *ReconciliationJobs) ScanDiscrepancies(ctx context.Context) error {
	slog.Info("Cron: Starting work-time discrepancy scan")

	flagged, err := j.reconciliationSvc.ScanRecent(ctx)
	if err != nil {
		return err
	}

	if len(flagged) == 0 {
		slog.Info("Cron: No work-time discrepancies found")
		return nil
	}

	flaggedDays := 0
	for _, user := range flagged {
		flaggedDays += len(user.Days)
		slog.Warn("Cron: Work-time discrepancies detected",
			"user_id", user.UserID,
			"flagged_days", len(user.Days))
	}

	slog.Info("Cron: Work-time discrepancy scan completed",
		"flagged_users", len(flagged),
		"flagged_days", flaggedDays)
	return nil
}
