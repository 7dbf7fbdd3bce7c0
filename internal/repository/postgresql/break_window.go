package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type breakWindowRepository struct {
	db *database.DB
}

// List implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) List(ctx context.Context) ([]breakwindow.BreakWindow, error) {
	return b.list(ctx, false)
}

// ListActive implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) ListActive(ctx context.Context) ([]breakwindow.BreakWindow, error) {
	return b.list(ctx, true)
}

func (b *breakWindowRepository) list(ctx context.Context, activeOnly bool) ([]breakwindow.BreakWindow, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, start_time, end_time, active, created_at, updated_at
		FROM break_windows
	`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY start_time`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list break windows: %w", err)
	}
	defer rows.Close()

	var windows []breakwindow.BreakWindow
	for rows.Next() {
		var w breakwindow.BreakWindow
		if err := rows.Scan(&w.ID, &w.Name, &w.StartTime, &w.EndTime, &w.Active, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan break window row: %w", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read break window rows: %w", err)
	}

	return windows, nil
}

// GetByID implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) GetByID(ctx context.Context, id string) (breakwindow.BreakWindow, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, start_time, end_time, active, created_at, updated_at
		FROM break_windows
		WHERE id = $1
	`

	var w breakwindow.BreakWindow
	err := q.QueryRow(ctx, query, id).Scan(&w.ID, &w.Name, &w.StartTime, &w.EndTime, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return breakwindow.BreakWindow{}, breakwindow.ErrBreakWindowNotFound
		}
		return breakwindow.BreakWindow{}, fmt.Errorf("failed to get break window: %w", err)
	}

	return w, nil
}

// Create implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) Create(ctx context.Context, window breakwindow.BreakWindow) (breakwindow.BreakWindow, error) {
	q := GetQuerier(ctx, b.db)

	window.ID = uuid.NewString()

	query := `
		INSERT INTO break_windows (id, name, start_time, end_time, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		window.ID, window.Name, window.StartTime, window.EndTime, window.Active,
	).Scan(&window.CreatedAt, &window.UpdatedAt)
	if err != nil {
		return breakwindow.BreakWindow{}, fmt.Errorf("failed to create break window: %w", err)
	}

	return window, nil
}

// Update implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) Update(ctx context.Context, window breakwindow.BreakWindow) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_windows
		SET name = $2, start_time = $3, end_time = $4, active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, window.ID, window.Name, window.StartTime, window.EndTime, window.Active)
	if err != nil {
		return fmt.Errorf("failed to update break window: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return breakwindow.ErrBreakWindowNotFound
	}

	return nil
}

// Deactivate implements breakwindow.BreakWindowRepository.
func (b *breakWindowRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_windows
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate break window: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return breakwindow.ErrBreakWindowNotFound
	}

	return nil
}

func NewBreakWindowRepository(db *database.DB) breakwindow.BreakWindowRepository {
	return &breakWindowRepository{db: db}
}
