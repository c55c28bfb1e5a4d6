package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timeAt(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, time.UTC)
}

func TestIsLate_Boundary(t *testing.T) {
	shiftStart := strPtr("08:00:00")

	// Exactly 15 minutes after shift start is still on time.
	assert.False(t, IsLate(timeAt(8, 15, 0), shiftStart))
	// One second past the grace period is late.
	assert.True(t, IsLate(timeAt(8, 15, 1), shiftStart))
	// Before shift start is never late.
	assert.False(t, IsLate(timeAt(7, 30, 0), shiftStart))
}

func TestIsLate_NoShiftStart(t *testing.T) {
	assert.False(t, IsLate(timeAt(23, 0, 0), nil))
	assert.False(t, IsLate(timeAt(23, 0, 0), strPtr("")))
	assert.False(t, IsLate(timeAt(23, 0, 0), strPtr("not-a-time")))
}

func TestEvaluateCheckIn_FirstOfDay(t *testing.T) {
	now := timeAt(7, 55, 0)
	ev := Evidence{Location: "Main gate", Latitude: 36.19, Longitude: 44.01}

	decision, err := EvaluateCheckIn(nil, "guard-1", now, strPtr("08:00:00"), ev)
	require.NoError(t, err)

	assert.Equal(t, ActionInsert, decision.Action)
	assert.Equal(t, StatusCheckedIn, decision.Record.Status)
	assert.Equal(t, "guard-1", decision.Record.GuardID)
	require.NotNil(t, decision.Record.CheckInTime)
	assert.Equal(t, now, *decision.Record.CheckInTime)
	assert.Equal(t, DateOf(now), decision.Record.Date)
	require.NotNil(t, decision.Record.CheckInLocation)
	assert.Equal(t, "Main gate", *decision.Record.CheckInLocation)
}

func TestEvaluateCheckIn_LateStatus(t *testing.T) {
	decision, err := EvaluateCheckIn(nil, "guard-1", timeAt(8, 15, 1), strPtr("08:00:00"), Evidence{})
	require.NoError(t, err)
	assert.Equal(t, StatusLate, decision.Record.Status)
}

func TestEvaluateCheckIn_ReEntryClearsCheckOutFields(t *testing.T) {
	checkIn := timeAt(8, 0, 0)
	checkOut := timeAt(12, 0, 0)
	existing := &Record{
		ID:                "rec-1",
		GuardID:           "guard-1",
		ShiftID:           strPtr("shift-9"),
		Date:              DateOf(checkIn),
		Status:            StatusCheckedOut,
		CheckInTime:       &checkIn,
		CheckOutTime:      &checkOut,
		CheckOutLocation:  strPtr("East gate"),
		CheckOutLatitude:  36.2,
		CheckOutLongitude: 44.0,
		CheckOutPhotoURL:  strPtr("photos/out.jpg"),
	}

	now := timeAt(13, 30, 0)
	decision, err := EvaluateCheckIn(existing, "guard-1", now, strPtr("08:00:00"), Evidence{Location: "Main gate"})
	require.NoError(t, err)

	assert.Equal(t, ActionReplace, decision.Action)
	assert.Equal(t, "rec-1", decision.Record.ID)
	assert.Equal(t, strPtr("shift-9"), decision.Record.ShiftID)
	// Re-entry after a checked-out morning: check-out evidence is gone.
	assert.Nil(t, decision.Record.CheckOutTime)
	assert.Nil(t, decision.Record.CheckOutLocation)
	assert.Nil(t, decision.Record.CheckOutPhotoURL)
	assert.Zero(t, decision.Record.CheckOutLatitude)
	assert.Zero(t, decision.Record.CheckOutLongitude)
	// Re-entry at 13:30 against an 08:00 shift is late.
	assert.Equal(t, StatusLate, decision.Record.Status)
}

func TestEvaluateCheckIn_IllegalStates(t *testing.T) {
	cases := []struct {
		status  Status
		wantErr error
	}{
		{StatusCheckedIn, ErrAlreadyCheckedIn},
		{StatusLate, ErrAlreadyCheckedIn},
		{StatusPending, ErrCheckInNotAllowed},
		{StatusAbsent, ErrCheckInNotAllowed},
	}
	for _, c := range cases {
		existing := &Record{ID: "rec-1", GuardID: "guard-1", Status: c.status}
		_, err := EvaluateCheckIn(existing, "guard-1", timeAt(9, 0, 0), nil, Evidence{})
		assert.ErrorIs(t, err, c.wantErr, "status %s", c.status)
	}
}

func TestEvaluateCheckIn_LocationFallback(t *testing.T) {
	decision, err := EvaluateCheckIn(nil, "guard-1", timeAt(8, 0, 0), nil, Evidence{})
	require.NoError(t, err)
	require.NotNil(t, decision.Record.CheckInLocation)
	assert.Equal(t, LocationUnavailable, *decision.Record.CheckInLocation)
	assert.Zero(t, decision.Record.CheckInLatitude)
	assert.Zero(t, decision.Record.CheckInLongitude)
}

func TestEvaluateCheckOut_Success(t *testing.T) {
	checkIn := timeAt(8, 0, 0)
	existing := &Record{
		ID:          "rec-1",
		GuardID:     "guard-1",
		Date:        DateOf(checkIn),
		Status:      StatusLate,
		CheckInTime: &checkIn,
	}

	now := timeAt(17, 0, 0)
	photo := strPtr("photos/exit.jpg")
	updated, err := EvaluateCheckOut(existing, now, Evidence{Location: "Main gate", Latitude: 36.19, Longitude: 44.01, PhotoURL: photo})
	require.NoError(t, err)

	assert.Equal(t, StatusCheckedOut, updated.Status)
	require.NotNil(t, updated.CheckOutTime)
	assert.Equal(t, now, *updated.CheckOutTime)
	assert.Equal(t, photo, updated.CheckOutPhotoURL)
	// Check-in evidence is untouched.
	assert.Equal(t, &checkIn, updated.CheckInTime)
	assert.Equal(t, "rec-1", updated.ID)
}

func TestEvaluateCheckOut_IllegalTransition(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusCheckedOut, StatusAbsent} {
		existing := &Record{ID: "rec-1", Status: status}
		_, err := EvaluateCheckOut(existing, timeAt(17, 0, 0), Evidence{})
		assert.ErrorIs(t, err, ErrNotCheckedIn, "status %s", status)
	}
}

func TestEvaluateCheckOut_NoActiveRecord(t *testing.T) {
	_, err := EvaluateCheckOut(nil, timeAt(17, 0, 0), Evidence{})
	assert.ErrorIs(t, err, ErrNoActiveAttendance)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusCheckedIn.Active())
	assert.True(t, StatusLate.Active())
	assert.False(t, StatusCheckedOut.Active())
	assert.False(t, StatusPending.Active())

	assert.True(t, StatusCheckedOut.Attended())
	assert.False(t, StatusAbsent.Attended())

	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("on_leave").Valid())
}
