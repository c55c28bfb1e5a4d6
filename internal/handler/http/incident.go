package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/incident"
	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/response"
)

type IncidentHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type incidentHandlerImpl struct {
	incidentService incident.IncidentService
}

func NewIncidentHandler(incidentService incident.IncidentService) IncidentHandler {
	return &incidentHandlerImpl{
		incidentService: incidentService,
	}
}

// Report implements IncidentHandler.
func (h *incidentHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	var req incident.CreateIncidentRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Photo is optional for incidents
	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.incidentService.ReportIncident(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident reported successfully", result)
}

// Get implements IncidentHandler.
func (h *incidentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.incidentService.GetIncident(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func incidentFilterFromQuery(r *http.Request) incident.IncidentFilter {
	filter := incident.IncidentFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	return filter
}

// List implements IncidentHandler.
func (h *incidentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := incidentFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.incidentService.ListIncidents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMy implements IncidentHandler.
func (h *incidentHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	filter := incidentFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.incidentService.ListMyIncidents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateStatus implements IncidentHandler.
func (h *incidentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req incident.UpdateIncidentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.incidentService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incident status updated successfully", result)
}
