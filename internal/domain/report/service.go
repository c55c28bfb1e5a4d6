package report

import "context"

// ReportService defines the interface for attendance report generation
type ReportService interface {
	// Generate the attendance report over a trailing day window
	GenerateAttendanceReport(ctx context.Context, req ReportRequest) (ReportResponse, error)

	// Render the report as a plain-text export for download
	ExportAttendanceReport(ctx context.Context, req ReportRequest) (string, error)
}
