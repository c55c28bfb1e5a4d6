package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/response"
)

type GuardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type guardHandlerImpl struct {
	guardService guard.GuardService
}

func NewGuardHandler(guardService guard.GuardService) GuardHandler {
	return &guardHandlerImpl{
		guardService: guardService,
	}
}

// Create implements GuardHandler.
func (h *guardHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req guard.CreateGuardRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create guard request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.guardService.CreateGuard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Guard created successfully", result)
}

// Get implements GuardHandler.
func (h *guardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.guardService.GetGuard(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements GuardHandler.
func (h *guardHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.guardService.ListGuards(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements GuardHandler.
func (h *guardHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req guard.UpdateGuardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.guardService.UpdateGuard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Guard updated successfully", result)
}

// Delete implements GuardHandler.
func (h *guardHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.guardService.DeleteGuard(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Guard deleted successfully", nil)
}
