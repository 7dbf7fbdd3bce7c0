package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// GetByUserAndDate implements worktime.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*worktime.AttendanceDay, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, work_date, clock_in, clock_out, work_minutes
		FROM attendance_days
		WHERE user_id = $1
		  AND work_date = $2
		LIMIT 1
	`

	var day worktime.AttendanceDay
	err := q.QueryRow(ctx, query, userID, workDate).Scan(
		&day.ID, &day.UserID, &day.WorkDate, &day.ClockIn, &day.ClockOut, &day.StoredWorkMinutes,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no attendance that day
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return &day, nil
}

// ListUserDatesSince implements worktime.AttendanceRepository.
func (a *attendanceRepository) ListUserDatesSince(ctx context.Context, since time.Time) ([]worktime.UserDate, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT user_id, work_date
		FROM attendance_days
		WHERE work_date >= $1
		  AND clock_in IS NOT NULL
		ORDER BY user_id, work_date
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan candidates: %w", err)
	}
	defer rows.Close()

	var dates []worktime.UserDate
	for rows.Next() {
		var d worktime.UserDate
		if err := rows.Scan(&d.UserID, &d.WorkDate); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}

	return dates, nil
}

func NewAttendanceRepository(db *database.DB) worktime.AttendanceRepository {
	return &attendanceRepository{db: db}
}
