package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBreakWindowService struct {
	windows       []breakwindow.BreakWindowResponse
	created       breakwindow.BreakWindowResponse
	createErr     error
	updateErr     error
	deactivateErr error
}

func (s *stubBreakWindowService) List(ctx context.Context) ([]breakwindow.BreakWindowResponse, error) {
	return s.windows, nil
}

func (s *stubBreakWindowService) Create(ctx context.Context, req breakwindow.CreateBreakWindowRequest) (breakwindow.BreakWindowResponse, error) {
	return s.created, s.createErr
}

func (s *stubBreakWindowService) Update(ctx context.Context, req breakwindow.UpdateBreakWindowRequest) (breakwindow.BreakWindowResponse, error) {
	return breakwindow.BreakWindowResponse{ID: req.ID}, s.updateErr
}

func (s *stubBreakWindowService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateErr
}

func TestBreakWindowHandler_List(t *testing.T) {
	svc := &stubBreakWindowService{
		windows: []breakwindow.BreakWindowResponse{
			{ID: "bw-1", Name: "lunch", StartTime: "12:00", EndTime: "13:00", Active: true},
		},
	}
	handler := NewBreakWindowHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/break-windows/", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "lunch", data[0].(map[string]interface{})["name"])
}

func TestBreakWindowHandler_Create(t *testing.T) {
	svc := &stubBreakWindowService{
		created: breakwindow.BreakWindowResponse{ID: "bw-2", Name: "afternoon", StartTime: "15:00", EndTime: "15:15", Active: true},
	}
	handler := NewBreakWindowHandler(svc)

	body, _ := json.Marshal(breakwindow.CreateBreakWindowRequest{
		Name: "afternoon", StartTime: "15:00", EndTime: "15:15", Active: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/break-windows/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBreakWindowHandler_Create_DuplicateMorningBreak(t *testing.T) {
	handler := NewBreakWindowHandler(&stubBreakWindowService{createErr: breakwindow.ErrMorningBreakExists})

	body, _ := json.Marshal(breakwindow.CreateBreakWindowRequest{
		Name: "morning", StartTime: "06:00", EndTime: "08:30", Active: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/break-windows/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBreakWindowHandler_Update_PullsIDFromURL(t *testing.T) {
	handler := NewBreakWindowHandler(&stubBreakWindowService{})

	body, _ := json.Marshal(map[string]string{"name": "renamed"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/break-windows/bw-3", bytes.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "bw-3")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "bw-3", data["id"])
}

func TestBreakWindowHandler_Deactivate_NotFound(t *testing.T) {
	handler := NewBreakWindowHandler(&stubBreakWindowService{deactivateErr: breakwindow.ErrBreakWindowNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/break-windows/missing", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.Deactivate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
