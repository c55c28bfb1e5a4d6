package shift

import "time"

// Shift is one guard's assignment for a single calendar date.
type Shift struct {
	ID              string
	GuardID         string
	Date            time.Time // calendar day
	StartTime       string    // HH:MM:SS
	EndTime         string    // HH:MM:SS
	LocationName    string
	LocationAddress *string
	Notes           *string
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields for supervisor listings
	GuardName        *string
	AttendanceStatus *string
}
