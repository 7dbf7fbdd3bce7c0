package worktime

import (
	"github.com/garageworks/workshop-backend-go/internal/pkg/validator"
)

type DayReportRequest struct {
	UserID string
	Date   string // "2006-01-02"
}

func (r *DayReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeReportRequest struct {
	UserID string
	From   string
	To     string
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClearDayRequest struct {
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	ClearedBy string  `json:"-"`
	Note      *string `json:"note"`
}

func (r *ClearDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReconciliationResponse struct {
	UserID            string           `json:"user_id"`
	Date              string           `json:"date"`
	AttendanceMinutes int              `json:"attendance_minutes"`
	WorkMinutes       int              `json:"work_minutes"`
	DifferenceMinutes int              `json:"difference_minutes"`
	Classification    string           `json:"classification"`
	ExcessiveWork     bool             `json:"excessive_work"`
	Intervals         []MergedInterval `json:"intervals"`
	BreakOverlaps     []BreakOverlap   `json:"break_overlaps,omitempty"`
}

type FlaggedUserResponse struct {
	UserID string                   `json:"user_id"`
	Days   []ReconciliationResponse `json:"days"`
}
