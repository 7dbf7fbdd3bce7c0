package breakwindow

import (
	"github.com/garageworks/workshop-backend-go/internal/pkg/validator"
)

type CreateBreakWindowRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

func (r *CreateBreakWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBreakWindowRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}

func (r *UpdateBreakWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakWindowResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
