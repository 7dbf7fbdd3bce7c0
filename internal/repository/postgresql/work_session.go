package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
)

type workSessionRepository struct {
	db *database.DB
}

// ListByUserBetween implements worktime.WorkSessionRepository.
func (w *workSessionRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]worktime.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, user_id, started_at, ended_at
		FROM work_sessions
		WHERE user_id = $1
		  AND started_at >= $2
		  AND started_at < $3
		ORDER BY started_at
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []worktime.WorkSession
	for rows.Next() {
		var s worktime.WorkSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work session rows: %w", err)
	}

	return sessions, nil
}

func NewWorkSessionRepository(db *database.DB) worktime.WorkSessionRepository {
	return &workSessionRepository{db: db}
}
