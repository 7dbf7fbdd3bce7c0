package breakwindow

import "context"

// BreakWindowService defines admin operations over the break catalog.
type BreakWindowService interface {
	// List returns all configured break windows.
	List(ctx context.Context) ([]BreakWindowResponse, error)

	// Create adds a break window to the catalog.
	Create(ctx context.Context, req CreateBreakWindowRequest) (BreakWindowResponse, error)

	// Update rewrites an existing break window.
	Update(ctx context.Context, req UpdateBreakWindowRequest) (BreakWindowResponse, error)

	// Deactivate removes a window from deduction without deleting it.
	Deactivate(ctx context.Context, id string) error
}
