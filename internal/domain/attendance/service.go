package attendance

import (
	"context"
)

// AttendanceService defines business logic for guard attendance.
type AttendanceService interface {
	// CheckIn processes a guard check-in for the current local day
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the guard's active session with photo evidence
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// GetToday returns the most recent record for today and legal actions
	GetToday(ctx context.Context) (TodayResponse, error)

	// GetMyAttendance retrieves history for the authenticated guard
	GetMyAttendance(ctx context.Context, filter HistoryFilter) (ListRecordsResponse, error)

	// ListByDate retrieves all guards' records for a date (supervisor)
	ListByDate(ctx context.Context, date string) ([]RecordResponse, error)
}
