package incident

import "time"

// Status is the review state of an incident report.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusResolved  Status = "resolved"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusReviewing),
	string(StatusResolved),
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusResolved:
		return true
	}
	return false
}

// Incident is a field report filed by a guard.
type Incident struct {
	ID          string
	GuardID     string
	Title       string
	Description string
	Location    *string
	Latitude    float64
	Longitude   float64
	PhotoURL    *string
	Status      Status
	ResolvedBy  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined field for supervisor listings
	GuardName *string
}
