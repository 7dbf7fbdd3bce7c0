package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
)

type exclusionRepository struct {
	db *database.DB
}

// IsCleared implements worktime.ExclusionRepository.
func (e *exclusionRepository) IsCleared(ctx context.Context, userID string, workDate time.Time) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM reconciliation_exclusions
			WHERE user_id = $1 AND work_date = $2
		)
	`

	var cleared bool
	if err := q.QueryRow(ctx, query, userID, workDate).Scan(&cleared); err != nil {
		return false, fmt.Errorf("failed to check cleared marker: %w", err)
	}

	return cleared, nil
}

// Clear implements worktime.ExclusionRepository.
func (e *exclusionRepository) Clear(ctx context.Context, exclusion worktime.Exclusion) (worktime.Exclusion, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO reconciliation_exclusions (id, user_id, work_date, cleared_by, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, work_date)
		DO UPDATE SET cleared_by = EXCLUDED.cleared_by, note = EXCLUDED.note
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		exclusion.ID, exclusion.UserID, exclusion.WorkDate, exclusion.ClearedBy, exclusion.Note,
	).Scan(&exclusion.ID, &exclusion.CreatedAt)
	if err != nil {
		return worktime.Exclusion{}, fmt.Errorf("failed to record cleared marker: %w", err)
	}

	return exclusion, nil
}

// Unclear implements worktime.ExclusionRepository.
func (e *exclusionRepository) Unclear(ctx context.Context, userID string, workDate time.Time) error {
	q := GetQuerier(ctx, e.db)

	query := `
		DELETE FROM reconciliation_exclusions
		WHERE user_id = $1 AND work_date = $2
	`

	tag, err := q.Exec(ctx, query, userID, workDate)
	if err != nil {
		return fmt.Errorf("failed to remove cleared marker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worktime.ErrExclusionNotFound
	}

	return nil
}

func NewExclusionRepository(db *database.DB) worktime.ExclusionRepository {
	return &exclusionRepository{db: db}
}
