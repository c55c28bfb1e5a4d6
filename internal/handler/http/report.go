package http

import (
	"net/http"
	"strconv"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/report"
	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportRequestFromQuery(r *http.Request) report.ReportRequest {
	req := report.ReportRequest{}

	if d := r.URL.Query().Get("window_days"); d != "" {
		if days, err := strconv.Atoi(d); err == nil {
			req.WindowDays = days
		}
	}

	return req
}

// Get implements ReportHandler.
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.reportService.ExportAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-report.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result))
}
