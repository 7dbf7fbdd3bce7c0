package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReconciliationService returns canned results so the handler can be
// tested without a database.
type stubReconciliationService struct {
	dayResult    worktime.ReconciliationResult
	dayErr       error
	rangeResults []worktime.ReconciliationResult
	rangeErr     error
	flagged      []worktime.FlaggedUser
	clearErr     error
	unclearErr   error

	lastClearReq worktime.ClearDayRequest
	rangeDates   []time.Time
}

func (s *stubReconciliationService) ReconcileDay(ctx context.Context, userID string, workDate time.Time) (worktime.ReconciliationResult, error) {
	return s.dayResult, s.dayErr
}

func (s *stubReconciliationService) ReconcileRange(ctx context.Context, userID string, workDates []time.Time) ([]worktime.ReconciliationResult, error) {
	s.rangeDates = workDates
	return s.rangeResults, s.rangeErr
}

func (s *stubReconciliationService) ScanRecent(ctx context.Context) ([]worktime.FlaggedUser, error) {
	return s.flagged, nil
}

func (s *stubReconciliationService) ClearDay(ctx context.Context, req worktime.ClearDayRequest) error {
	s.lastClearReq = req
	return s.clearErr
}

func (s *stubReconciliationService) UnclearDay(ctx context.Context, userID string, workDate time.Time) error {
	return s.unclearErr
}

func adminContext(t *testing.T, userID string) context.Context {
	token, err := jwt.NewBuilder().
		Claim("user_id", userID).
		Claim("is_admin", true).
		Claim("type", "access").
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

func TestWorktimeHandler_DayReport_Success(t *testing.T) {
	svc := &stubReconciliationService{
		dayResult: worktime.ReconciliationResult{
			UserID:            "worker-1",
			WorkDate:          time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
			AttendanceMinutes: 480,
			WorkMinutes:       400,
			DifferenceMinutes: -80,
			Classification:    worktime.ClassificationUnderReport,
		},
	}
	handler := NewWorktimeHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report?user_id=worker-1&date=2026-08-03", nil)
	w := httptest.NewRecorder()

	handler.DayReport(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "worker-1", data["user_id"])
	assert.Equal(t, "2026-08-03", data["date"])
	assert.Equal(t, float64(-80), data["difference_minutes"])
	assert.Equal(t, "under_report", data["classification"])
}

func TestWorktimeHandler_DayReport_MissingParams(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report?date=not-a-date", nil)
	w := httptest.NewRecorder()

	handler.DayReport(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestWorktimeHandler_DayReport_NoAttendance(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{dayErr: worktime.ErrNoAttendance})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report?user_id=worker-1&date=2026-08-03", nil)
	w := httptest.NewRecorder()

	handler.DayReport(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorktimeHandler_DayReport_ClearedDay(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{dayErr: worktime.ErrDayCleared})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report?user_id=worker-1&date=2026-08-03", nil)
	w := httptest.NewRecorder()

	handler.DayReport(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWorktimeHandler_RangeReport_ExpandsDates(t *testing.T) {
	svc := &stubReconciliationService{}
	handler := NewWorktimeHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report/range?user_id=worker-1&from=2026-08-03&to=2026-08-07", nil)
	w := httptest.NewRecorder()

	handler.RangeReport(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.rangeDates, 5)
}

func TestWorktimeHandler_RangeReport_InvertedRange(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/report/range?user_id=worker-1&from=2026-08-07&to=2026-08-03", nil)
	w := httptest.NewRecorder()

	handler.RangeReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorktimeHandler_Flagged(t *testing.T) {
	svc := &stubReconciliationService{
		flagged: []worktime.FlaggedUser{
			{
				UserID: "worker-2",
				Days: []worktime.ReconciliationResult{
					{
						UserID:         "worker-2",
						WorkDate:       time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC),
						Classification: worktime.ClassificationOverReport,
					},
				},
			},
		},
	}
	handler := NewWorktimeHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worktime/flagged", nil)
	w := httptest.NewRecorder()

	handler.Flagged(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	user := data[0].(map[string]interface{})
	assert.Equal(t, "worker-2", user["user_id"])
}

func TestWorktimeHandler_ClearDay_TakesClearedByFromToken(t *testing.T) {
	svc := &stubReconciliationService{}
	handler := NewWorktimeHandler(svc)

	body, _ := json.Marshal(map[string]string{
		"user_id": "worker-1",
		"date":    "2026-08-03",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/worktime/clear", bytes.NewReader(body))
	req = req.WithContext(adminContext(t, "supervisor-1"))
	w := httptest.NewRecorder()

	handler.ClearDay(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "supervisor-1", svc.lastClearReq.ClearedBy)
	assert.Equal(t, "worker-1", svc.lastClearReq.UserID)
}

func TestWorktimeHandler_ClearDay_NoToken(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{})

	body, _ := json.Marshal(map[string]string{
		"user_id": "worker-1",
		"date":    "2026-08-03",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/worktime/clear", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ClearDay(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorktimeHandler_UnclearDay_NotFound(t *testing.T) {
	handler := NewWorktimeHandler(&stubReconciliationService{unclearErr: worktime.ErrExclusionNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/worktime/clear?user_id=worker-1&date=2026-08-03", nil)
	w := httptest.NewRecorder()

	handler.UnclearDay(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
