package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	guardRepo      guard.GuardRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	guardRepo guard.GuardRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		guardRepo:      guardRepo,
	}
}

// GenerateAttendanceReport generates the attendance report over a trailing
// day window ending today.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.ReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	today := time.Now().UTC()
	since := today.AddDate(0, 0, -(req.WindowDays - 1)).Format("2006-01-02")

	guards, err := s.guardRepo.ListByRole(ctx, guard.RoleSecurity)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to list guards: %w", err)
	}

	records, err := s.attendanceRepo.ListSince(ctx, since)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	daily, err := report.ComputeDailyStats(records, guards, req.WindowDays, today)
	if err != nil {
		return report.ReportResponse{}, err
	}

	performance, err := report.ComputePerformance(records, guards, req.WindowDays)
	if err != nil {
		return report.ReportResponse{}, err
	}

	// Short windows cannot produce a trend; report it as flat.
	trend := 0
	if len(daily) >= report.TrendWindow {
		trend, err = report.ComputeTrend(daily)
		if err != nil {
			return report.ReportResponse{}, err
		}
	}

	return report.ReportResponse{
		WindowDays:  req.WindowDays,
		Summary:     report.ComputeSummary(daily, trend, len(guards)),
		Daily:       daily,
		Performance: performance,
	}, nil
}

// ExportAttendanceReport renders the report as plain text for download.
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, req report.ReportRequest) (string, error) {
	rep, err := s.GenerateAttendanceReport(ctx, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Attendance Report - last %d days\n", rep.WindowDays)
	fmt.Fprintf(&b, "Generated at %s\n\n", time.Now().UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "Guards: %d\n", rep.Summary.TotalGuards)
	fmt.Fprintf(&b, "Average attendance: %d%%\n", rep.Summary.AvgAttendancePct)
	fmt.Fprintf(&b, "Late rate: %d%%\n", rep.Summary.LateRatePct)
	fmt.Fprintf(&b, "Trend: %+d%%\n\n", rep.Summary.TrendPct)

	b.WriteString("Date        Total  Attended  Late  Absent\n")
	for _, d := range rep.Daily {
		fmt.Fprintf(&b, "%s  %5d  %8d  %4d  %6d\n", d.Date, d.Total, d.Attended, d.Late, d.Absent)
	}

	b.WriteString("\nGuard performance\n")
	for i, p := range rep.Performance {
		fmt.Fprintf(&b, "%d. %s: on time %d, late %d, absent %d, avg check-in %s\n",
			i+1, p.GuardName, p.OnTime, p.Late, p.Absent, p.AverageCheckIn)
	}

	return b.String(), nil
}
