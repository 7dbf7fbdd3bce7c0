package breakwindow

import "context"

// BreakWindowRepository defines data access for configured break windows.
type BreakWindowRepository interface {
	// List retrieves every configured break window, active or not.
	List(ctx context.Context) ([]BreakWindow, error)

	// ListActive retrieves only the windows currently deducted from work time.
	ListActive(ctx context.Context) ([]BreakWindow, error)

	// GetByID retrieves one break window.
	GetByID(ctx context.Context, id string) (BreakWindow, error)

	// Create inserts a new break window.
	Create(ctx context.Context, window BreakWindow) (BreakWindow, error)

	// Update rewrites name, times and active flag of an existing window.
	Update(ctx context.Context, window BreakWindow) error

	// Deactivate flips a window to inactive without deleting its history.
	Deactivate(ctx context.Context, id string) error
}
