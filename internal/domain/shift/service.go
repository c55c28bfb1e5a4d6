package shift

import "context"

// ShiftService defines business logic for shift scheduling.
type ShiftService interface {
	// CreateShift assigns a shift and seeds a pending attendance record
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// GetShift retrieves a single shift
	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	// ListShiftsByDate retrieves the roster for a date (supervisor)
	ListShiftsByDate(ctx context.Context, date string) ([]ShiftResponse, error)

	// ListMyShifts retrieves upcoming shifts for the authenticated guard
	ListMyShifts(ctx context.Context, fromDate string) ([]ShiftResponse, error)

	// UpdateShift edits an existing shift
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a shift and its seeded pending attendance
	DeleteShift(ctx context.Context, id string) error
}
