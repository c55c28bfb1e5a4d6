package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. Returns ErrDuplicateRecord when the
	// store enforces a (guard_id, date) uniqueness constraint and it fires.
	Create(ctx context.Context, rec Record) (Record, error)

	// ReplaceCheckIn overwrites the existing row for (guard_id, date) with
	// fresh check-in fields and clears all check-out fields. Fallback path
	// for ErrDuplicateRecord and the re-entry write.
	ReplaceCheckIn(ctx context.Context, rec Record) error

	// UpdateCheckOut writes the check-out mutation onto an existing row.
	UpdateCheckOut(ctx context.Context, rec Record) error

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// GetLatestForDate returns the most recent record for a guard on a
	// calendar date, ordered by check_in_time descending. Nil when none.
	GetLatestForDate(ctx context.Context, guardID string, date string) (*Record, error)

	// ListByGuard retrieves a guard's history with filters and pagination,
	// newest first.
	ListByGuard(ctx context.Context, guardID string, filter HistoryFilter) ([]Record, int64, error)

	// ListByDate retrieves all records for a date with guard names joined,
	// ordered by check_in_time descending (supervisor feed).
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListSince retrieves all records with date >= since, across guards,
	// ordered by date ascending (reporting window).
	ListSince(ctx context.Context, since string) ([]Record, error)

	// GuardIDsWithRecordOn returns the distinct guard IDs that have any
	// record on the given date (absence marking).
	GuardIDsWithRecordOn(ctx context.Context, date string) ([]string, error)

	// MarkPendingAsAbsent flips every still-pending record on the date to
	// absent and returns how many rows changed.
	MarkPendingAsAbsent(ctx context.Context, date string) (int64, error)

	// DeleteByShift removes records seeded by a shift assignment.
	DeleteByShift(ctx context.Context, shiftID string) error
}
