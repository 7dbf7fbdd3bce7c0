package breakwindow

import (
	"context"
	"errors"
	"fmt"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
	"github.com/garageworks/workshop-backend-go/internal/pkg/timeofday"
	"github.com/garageworks/workshop-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type BreakWindowServiceImpl struct {
	db *database.DB
	breakwindow.BreakWindowRepository
}

func NewBreakWindowService(db *database.DB, repo breakwindow.BreakWindowRepository) breakwindow.BreakWindowService {
	return &BreakWindowServiceImpl{
		db:                    db,
		BreakWindowRepository: repo,
	}
}

// List implements breakwindow.BreakWindowService.
func (s *BreakWindowServiceImpl) List(ctx context.Context) ([]breakwindow.BreakWindowResponse, error) {
	windows, err := s.BreakWindowRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list break windows: %w", err)
	}

	responses := make([]breakwindow.BreakWindowResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, mapBreakWindowToResponse(w))
	}
	return responses, nil
}

// Create implements breakwindow.BreakWindowService.
func (s *BreakWindowServiceImpl) Create(ctx context.Context, req breakwindow.CreateBreakWindowRequest) (breakwindow.BreakWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return breakwindow.BreakWindowResponse{}, err
	}

	window := breakwindow.BreakWindow{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    req.Active,
	}

	var created breakwindow.BreakWindow
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ensureSingleMorningBreak(txCtx, window, ""); err != nil {
			return err
		}

		var err error
		created, err = s.BreakWindowRepository.Create(txCtx, window)
		return err
	})
	if err != nil {
		if errors.Is(err, breakwindow.ErrMorningBreakExists) {
			return breakwindow.BreakWindowResponse{}, err
		}
		return breakwindow.BreakWindowResponse{}, fmt.Errorf("failed to create break window: %w", err)
	}

	return mapBreakWindowToResponse(created), nil
}

// Update implements breakwindow.BreakWindowService.
func (s *BreakWindowServiceImpl) Update(ctx context.Context, req breakwindow.UpdateBreakWindowRequest) (breakwindow.BreakWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return breakwindow.BreakWindowResponse{}, err
	}

	var updated breakwindow.BreakWindow
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		window, err := s.BreakWindowRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			window.Name = *req.Name
		}
		if req.StartTime != nil {
			window.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			window.EndTime = *req.EndTime
		}
		if req.Active != nil {
			window.Active = *req.Active
		}

		if err := s.ensureSingleMorningBreak(txCtx, window, window.ID); err != nil {
			return err
		}

		if err := s.BreakWindowRepository.Update(txCtx, window); err != nil {
			return err
		}
		updated = window
		return nil
	})
	if err != nil {
		if errors.Is(err, breakwindow.ErrBreakWindowNotFound) || errors.Is(err, breakwindow.ErrMorningBreakExists) {
			return breakwindow.BreakWindowResponse{}, err
		}
		return breakwindow.BreakWindowResponse{}, fmt.Errorf("failed to update break window: %w", err)
	}

	return mapBreakWindowToResponse(updated), nil
}

// Deactivate implements breakwindow.BreakWindowService.
func (s *BreakWindowServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.BreakWindowRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, breakwindow.ErrBreakWindowNotFound) {
			return breakwindow.ErrBreakWindowNotFound
		}
		return fmt.Errorf("failed to deactivate break window: %w", err)
	}
	return nil
}

// ensureSingleMorningBreak keeps the catalog invariant that at most one
// active window carries the exact 06:00-08:30 morning-break identity.
func (s *BreakWindowServiceImpl) ensureSingleMorningBreak(ctx context.Context, candidate breakwindow.BreakWindow, excludeID string) error {
	if !candidate.Active || !isMorningWindow(candidate) {
		return nil
	}

	active, err := s.BreakWindowRepository.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, w := range active {
		if w.ID != excludeID && isMorningWindow(w) {
			return breakwindow.ErrMorningBreakExists
		}
	}
	return nil
}

func isMorningWindow(w breakwindow.BreakWindow) bool {
	start, ok := timeofday.Parse(w.StartTime)
	if !ok {
		return false
	}
	end, ok := timeofday.Parse(w.EndTime)
	if !ok {
		return false
	}
	return start == breakwindow.MorningBreakStartMin && end == breakwindow.MorningBreakEndMin
}

func mapBreakWindowToResponse(w breakwindow.BreakWindow) breakwindow.BreakWindowResponse {
	return breakwindow.BreakWindowResponse{
		ID:        w.ID,
		Name:      w.Name,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Active:    w.Active,
		CreatedAt: w.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: w.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
