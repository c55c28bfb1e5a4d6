package attendance

import (
	"time"
)

// Status is the closed set of attendance states. pending and absent are set
// by the shift scheduling process, never by guard action.
type Status string

const (
	StatusPending    Status = "pending"
	StatusCheckedIn  Status = "checked_in"
	StatusLate       Status = "late"
	StatusCheckedOut Status = "checked_out"
	StatusAbsent     Status = "absent"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusLate, StatusCheckedOut, StatusAbsent:
		return true
	}
	return false
}

// Active reports whether the guard is currently on site under this record.
func (s Status) Active() bool {
	return s == StatusCheckedIn || s == StatusLate
}

// Attended reports whether this status counts as showing up for the day.
func (s Status) Attended() bool {
	return s == StatusCheckedIn || s == StatusLate || s == StatusCheckedOut
}

// Record is one row per check-in attempt for a guard on a calendar date.
// A guard may have several records on the same date (check out, check in
// again); at most one of them is Active at any time.
type Record struct {
	ID                string
	GuardID           string
	ShiftID           *string
	Date              time.Time // calendar day in the guard's local zone, not a timestamp
	Status            Status
	CheckInTime       *time.Time
	CheckInLocation   *string
	CheckInLatitude   float64
	CheckInLongitude  float64
	CheckOutTime      *time.Time
	CheckOutLocation  *string
	CheckOutLatitude  float64
	CheckOutLongitude float64
	CheckOutPhotoURL  *string
	Notes             *string
	CreatedAt         time.Time

	// Join fields
	GuardName *string
}
