package shift

import "context"

// ShiftRepository defines data access for shift assignments.
type ShiftRepository interface {
	// Create inserts a shift. Returns ErrShiftOverlap when the guard
	// already has a shift on the date.
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// ListByDate retrieves all shifts for a date with guard names and
	// attendance status joined, ordered by start_time.
	ListByDate(ctx context.Context, date string) ([]Shift, error)

	// ListByGuard retrieves a guard's shifts from a date onward.
	ListByGuard(ctx context.Context, guardID string, fromDate string) ([]Shift, error)

	// Update applies the non-nil fields of the request
	Update(ctx context.Context, req UpdateShiftRequest) (Shift, error)

	// Delete removes a shift by ID
	Delete(ctx context.Context, id string) error
}
