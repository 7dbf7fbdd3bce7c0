package http

import (
	"encoding/json"
	"net/http"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BreakWindowHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type breakWindowHandlerImpl struct {
	breakWindowService breakwindow.BreakWindowService
}

func NewBreakWindowHandler(breakWindowService breakwindow.BreakWindowService) BreakWindowHandler {
	return &breakWindowHandlerImpl{
		breakWindowService: breakWindowService,
	}
}

// List implements BreakWindowHandler.
func (h *breakWindowHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	windows, err := h.breakWindowService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, windows)
}

// Create implements BreakWindowHandler.
func (h *breakWindowHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req breakwindow.CreateBreakWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.breakWindowService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break window created", created)
}

// Update implements BreakWindowHandler.
func (h *breakWindowHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req breakwindow.UpdateBreakWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.breakWindowService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break window updated", updated)
}

// Deactivate implements BreakWindowHandler.
func (h *breakWindowHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.breakWindowService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break window deactivated", nil)
}
