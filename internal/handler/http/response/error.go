package response

import (
	"errors"
	"net/http"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Worktime domain errors
	switch {
	case errors.Is(err, worktime.ErrNoAttendance):
		NotFound(w, "No attendance record with a clock-in for this day")
	case errors.Is(err, worktime.ErrDayCleared):
		Conflict(w, "This day has been cleared by a supervisor")
	case errors.Is(err, worktime.ErrExclusionNotFound):
		NotFound(w, "No cleared marker exists for this day")

	// Break window domain errors
	case errors.Is(err, breakwindow.ErrBreakWindowNotFound):
		NotFound(w, "Break window not found")
	case errors.Is(err, breakwindow.ErrMorningBreakExists):
		Conflict(w, "An active morning break window already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
