package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type WorktimeHandler interface {
	DayReport(w http.ResponseWriter, r *http.Request)
	RangeReport(w http.ResponseWriter, r *http.Request)
	Flagged(w http.ResponseWriter, r *http.Request)
	ClearDay(w http.ResponseWriter, r *http.Request)
	UnclearDay(w http.ResponseWriter, r *http.Request)
}

type worktimeHandlerImpl struct {
	reconciliationService worktime.ReconciliationService
}

func NewWorktimeHandler(reconciliationService worktime.ReconciliationService) WorktimeHandler {
	return &worktimeHandlerImpl{
		reconciliationService: reconciliationService,
	}
}

// rangeLimitDays caps a single range request; anything wider belongs in
// the scan job.
const rangeLimitDays = 92

// DayReport implements WorktimeHandler.
func (h *worktimeHandlerImpl) DayReport(w http.ResponseWriter, r *http.Request) {
	req := worktime.DayReportRequest{
		UserID: r.URL.Query().Get("user_id"),
		Date:   r.URL.Query().Get("date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	workDate, _ := time.Parse("2006-01-02", req.Date)

	result, err := h.reconciliationService.ReconcileDay(r.Context(), req.UserID, workDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapResultToResponse(result))
}

// RangeReport implements WorktimeHandler.
func (h *worktimeHandlerImpl) RangeReport(w http.ResponseWriter, r *http.Request) {
	req := worktime.RangeReportRequest{
		UserID: r.URL.Query().Get("user_id"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	if to.Before(from) {
		response.BadRequest(w, "'to' must not be before 'from'", nil)
		return
	}
	if to.Sub(from) > rangeLimitDays*24*time.Hour {
		response.BadRequest(w, fmt.Sprintf("range must not exceed %d days", rangeLimitDays), nil)
		return
	}

	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	results, err := h.reconciliationService.ReconcileRange(r.Context(), req.UserID, dates)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]worktime.ReconciliationResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, mapResultToResponse(result))
	}
	response.Success(w, responses)
}

// Flagged implements WorktimeHandler.
func (h *worktimeHandlerImpl) Flagged(w http.ResponseWriter, r *http.Request) {
	flagged, err := h.reconciliationService.ScanRecent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]worktime.FlaggedUserResponse, 0, len(flagged))
	for _, user := range flagged {
		days := make([]worktime.ReconciliationResponse, 0, len(user.Days))
		for _, day := range user.Days {
			days = append(days, mapResultToResponse(day))
		}
		responses = append(responses, worktime.FlaggedUserResponse{
			UserID: user.UserID,
			Days:   days,
		})
	}
	response.Success(w, responses)
}

// ClearDay implements WorktimeHandler.
func (h *worktimeHandlerImpl) ClearDay(w http.ResponseWriter, r *http.Request) {
	var req worktime.ClearDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	clearedBy, ok := claims["user_id"].(string)
	if !ok || clearedBy == "" {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}
	req.ClearedBy = clearedBy

	if err := h.reconciliationService.ClearDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day cleared", nil)
}

// UnclearDay implements WorktimeHandler.
func (h *worktimeHandlerImpl) UnclearDay(w http.ResponseWriter, r *http.Request) {
	req := worktime.DayReportRequest{
		UserID: r.URL.Query().Get("user_id"),
		Date:   r.URL.Query().Get("date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	workDate, _ := time.Parse("2006-01-02", req.Date)

	if err := h.reconciliationService.UnclearDay(r.Context(), req.UserID, workDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cleared marker removed", nil)
}

func mapResultToResponse(result worktime.ReconciliationResult) worktime.ReconciliationResponse {
	return worktime.ReconciliationResponse{
		UserID:            result.UserID,
		Date:              result.WorkDate.Format("2006-01-02"),
		AttendanceMinutes: result.AttendanceMinutes,
		WorkMinutes:       result.WorkMinutes,
		DifferenceMinutes: result.DifferenceMinutes,
		Classification:    string(result.Classification),
		ExcessiveWork:     result.ExcessiveWork,
		Intervals:         result.Intervals,
		BreakOverlaps:     result.BreakOverlaps,
	}
}
