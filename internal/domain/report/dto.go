package report

import (
	"fmt"

	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

// MaxWindowDays caps the reporting window a client can request.
const MaxWindowDays = 90

// DefaultWindowDays is used when the client sends no period.
const DefaultWindowDays = 7

// ReportRequest selects the trailing day window to report over.
type ReportRequest struct {
	WindowDays int `json:"window_days"`
}

// Validate applies the default window and rejects out-of-range values.
func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WindowDays == 0 {
		r.WindowDays = DefaultWindowDays
	}
	if r.WindowDays < 1 || r.WindowDays > MaxWindowDays {
		errs = append(errs, validator.ValidationError{
			Field:   "window_days",
			Message: fmt.Sprintf("window_days must be between 1 and %d", MaxWindowDays),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayStats is the derived attendance summary for one calendar date.
// Computed fresh on each query, never persisted.
type DayStats struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Total    int    `json:"total"`
	Attended int    `json:"attended"`
	Late     int    `json:"late"`
	Absent   int    `json:"absent"`
}

// GuardPerformance is the derived per-guard summary over a trailing window.
type GuardPerformance struct {
	GuardID        string `json:"guard_id"`
	GuardName      string `json:"guard_name"`
	TotalDays      int    `json:"total_days"`
	OnTime         int    `json:"on_time"`
	Late           int    `json:"late"`
	Absent         int    `json:"absent"`
	AverageCheckIn string `json:"average_check_in"` // HH:MM, or --:-- with no check-ins
}

// Summary is the headline block above the charts.
type Summary struct {
	TotalGuards      int `json:"total_guards"`
	AvgAttendancePct int `json:"avg_attendance_pct"`
	LateRatePct      int `json:"late_rate_pct"`
	TrendPct         int `json:"trend_pct"` // signed percentage-point delta
}

// ReportResponse bundles everything the reports screen renders.
type ReportResponse struct {
	WindowDays  int                `json:"window_days"`
	Summary     Summary            `json:"summary"`
	Daily       []DayStats         `json:"daily"`
	Performance []GuardPerformance `json:"performance"`
}
