package attendance

import (
	"time"
)

// LateGrace is how far past the scheduled shift start a check-in still
// counts as on time. Checking in at exactly shift start + grace is on time;
// one second later is late.
const LateGrace = 15 * time.Minute

// LocationUnavailable is stored when the caller could not supply an address
// (location permission denied, reverse geocoding failed with no coordinates).
const LocationUnavailable = "Location unavailable"

// WriteAction tells the caller how to persist a check-in decision.
type WriteAction string

const (
	// ActionInsert creates a new record for the day.
	ActionInsert WriteAction = "insert"
	// ActionReplace overwrites an existing checked_out record in place,
	// clearing its check-out fields (re-entry after leaving).
	ActionReplace WriteAction = "replace"
)

// Evidence is the location/photo proof the caller captured for a check-in
// or check-out. The engine stores whatever it is given; capture and
// reverse geocoding are external collaborators.
type Evidence struct {
	Location  string
	Latitude  float64
	Longitude float64
	PhotoURL  *string
}

// CheckInDecision is the intended write produced by EvaluateCheckIn.
// The engine never persists anything itself.
type CheckInDecision struct {
	Action WriteAction
	Record Record
}

// CanCheckIn reports whether a check-in is legal given the most recent
// record for today. Legal when there is no record yet, or the guard has
// checked out and is re-entering.
func CanCheckIn(existing *Record) bool {
	return existing == nil || existing.Status == StatusCheckedOut
}

// CanCheckOut reports whether a check-out is legal: only from an active
// (checked_in or late) record.
func CanCheckOut(existing *Record) bool {
	return existing != nil && existing.Status.Active()
}

// IsLate reports whether now is past the shift start plus grace period.
// shiftStart is an HH:MM:SS wall-clock string in now's location; an unset
// or malformed shift start never counts as late.
func IsLate(now time.Time, shiftStart *string) bool {
	if shiftStart == nil || *shiftStart == "" {
		return false
	}
	t, err := time.Parse("15:04:05", *shiftStart)
	if err != nil {
		return false
	}
	start := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location())
	return now.After(start.Add(LateGrace))
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// EvaluateCheckIn decides whether the guard may check in now and, if so,
// what should be written. existing must be the most recent record for the
// guard for today (ordered by check_in_time descending), or nil.
//
// A nil existing record yields an insert. An existing checked_out record
// yields a replace that resets every check-out field, modelling a guard
// re-entering the site on the same date. Any other status is an illegal
// transition.
func EvaluateCheckIn(existing *Record, guardID string, now time.Time, shiftStart *string, ev Evidence) (CheckInDecision, error) {
	if !CanCheckIn(existing) {
		if existing.Status.Active() {
			return CheckInDecision{}, ErrAlreadyCheckedIn
		}
		return CheckInDecision{}, ErrCheckInNotAllowed
	}

	status := StatusCheckedIn
	if IsLate(now, shiftStart) {
		status = StatusLate
	}

	checkIn := now
	location := ev.Location
	if location == "" {
		location = LocationUnavailable
	}

	rec := Record{
		GuardID:          guardID,
		Date:             DateOf(now),
		Status:           status,
		CheckInTime:      &checkIn,
		CheckInLocation:  &location,
		CheckInLatitude:  ev.Latitude,
		CheckInLongitude: ev.Longitude,
	}

	if existing == nil {
		return CheckInDecision{Action: ActionInsert, Record: rec}, nil
	}

	// Re-entry: keep identity, clear the previous check-out entirely.
	rec.ID = existing.ID
	rec.ShiftID = existing.ShiftID
	rec.CreatedAt = existing.CreatedAt
	return CheckInDecision{Action: ActionReplace, Record: rec}, nil
}

// EvaluateCheckOut decides the check-out mutation for the most recent
// record for today. It never creates a record: a nil existing record means
// another client finished the session first, and a non-active record is an
// illegal transition.
func EvaluateCheckOut(existing *Record, now time.Time, ev Evidence) (Record, error) {
	if existing == nil {
		return Record{}, ErrNoActiveAttendance
	}
	if !existing.Status.Active() {
		return Record{}, ErrNotCheckedIn
	}

	checkOut := now
	location := ev.Location
	if location == "" {
		location = LocationUnavailable
	}

	updated := *existing
	updated.Status = StatusCheckedOut
	updated.CheckOutTime = &checkOut
	updated.CheckOutLocation = &location
	updated.CheckOutLatitude = ev.Latitude
	updated.CheckOutLongitude = ev.Longitude
	updated.CheckOutPhotoURL = ev.PhotoURL
	return updated, nil
}
