package attendance

import "errors"

// Attendance domain errors
var (
	// Illegal transitions: the UI disables the action first, the engine
	// still rejects it when invoked anyway.
	ErrAlreadyCheckedIn  = errors.New("you are already checked in for today")
	ErrCheckInNotAllowed = errors.New("check-in is not allowed in the current state")
	ErrNotCheckedIn      = errors.New("you are not checked in")

	// Check-out raced with another client: no active record exists anymore.
	ErrNoActiveAttendance = errors.New("no active attendance found for today")

	// The store still enforces one row per (guard, date); insert falls
	// back to an in-place update when this is returned.
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
)
