package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
)

var reportToday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func dayOffset(offset int) time.Time {
	return reportToday.AddDate(0, 0, offset)
}

func checkInAt(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func rec(guardID string, day time.Time, status attendance.Status, hour, min int) attendance.Record {
	return attendance.Record{
		GuardID:     guardID,
		Date:        day,
		Status:      status,
		CheckInTime: checkInAt(day, hour, min),
	}
}

func roster(ids ...string) []guard.Guard {
	guards := make([]guard.Guard, 0, len(ids))
	for _, id := range ids {
		guards = append(guards, guard.Guard{ID: id, FullName: "Guard " + id})
	}
	return guards
}

func TestComputeDailyStats_BucketShape(t *testing.T) {
	daily, err := ComputeDailyStats(nil, roster("g1", "g2"), 7, reportToday)
	require.NoError(t, err)

	require.Len(t, daily, 7)
	assert.Equal(t, "2025-03-04", daily[0].Date)
	assert.Equal(t, "2025-03-10", daily[6].Date)
	for _, d := range daily {
		assert.Equal(t, 2, d.Total)
		assert.Zero(t, d.Attended)
		assert.Equal(t, 2, d.Absent)
	}
}

func TestComputeDailyStats_DistinctGuardsPerDay(t *testing.T) {
	// Same guard with a checked-out morning and a late re-entry on one day
	// counts as one attended guard and one late guard.
	records := []attendance.Record{
		rec("g1", reportToday, attendance.StatusCheckedOut, 8, 0),
		rec("g1", reportToday, attendance.StatusLate, 13, 30),
	}

	daily, err := ComputeDailyStats(records, roster("g1", "g2"), 1, reportToday)
	require.NoError(t, err)

	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].Attended)
	assert.Equal(t, 1, daily[0].Late)
	assert.Equal(t, 1, daily[0].Absent)
}

func TestComputeDailyStats_AbsentNeverNegative(t *testing.T) {
	// Records from a guard no longer on the roster push attended above total.
	records := []attendance.Record{
		rec("g1", reportToday, attendance.StatusCheckedIn, 8, 0),
		rec("g-removed", reportToday, attendance.StatusCheckedIn, 8, 5),
	}

	daily, err := ComputeDailyStats(records, roster("g1"), 1, reportToday)
	require.NoError(t, err)

	assert.Equal(t, 2, daily[0].Attended)
	assert.Equal(t, 0, daily[0].Absent)
}

func TestComputeDailyStats_IgnoresOutOfWindowDates(t *testing.T) {
	records := []attendance.Record{
		rec("g1", dayOffset(-10), attendance.StatusCheckedIn, 8, 0),
		rec("g1", reportToday, attendance.StatusCheckedIn, 8, 0),
	}

	daily, err := ComputeDailyStats(records, roster("g1"), 3, reportToday)
	require.NoError(t, err)

	require.Len(t, daily, 3)
	assert.Zero(t, daily[0].Attended)
	assert.Zero(t, daily[1].Attended)
	assert.Equal(t, 1, daily[2].Attended)
}

func TestComputeDailyStats_RejectsNonPositiveWindow(t *testing.T) {
	_, err := ComputeDailyStats(nil, nil, 0, reportToday)
	assert.Error(t, err)

	_, err = ComputeDailyStats(nil, nil, -7, reportToday)
	assert.Error(t, err)
}

func TestComputePerformance_AverageCheckIn(t *testing.T) {
	records := []attendance.Record{
		rec("g1", dayOffset(-1), attendance.StatusCheckedIn, 8, 0),
		rec("g1", reportToday, attendance.StatusCheckedIn, 9, 0),
	}

	performance, err := ComputePerformance(records, roster("g1"), 7)
	require.NoError(t, err)

	require.Len(t, performance, 1)
	assert.Equal(t, "08:30", performance[0].AverageCheckIn)
}

func TestComputePerformance_NoCheckIns(t *testing.T) {
	performance, err := ComputePerformance(nil, roster("g1"), 7)
	require.NoError(t, err)

	require.Len(t, performance, 1)
	assert.Equal(t, NoCheckIns, performance[0].AverageCheckIn)
	assert.Equal(t, 7, performance[0].Absent)
}

func TestComputePerformance_TwoGuards(t *testing.T) {
	// g1: on time twice, late once. g2: late once. Window of 5 days.
	records := []attendance.Record{
		rec("g1", dayOffset(-4), attendance.StatusCheckedIn, 8, 0),
		rec("g1", dayOffset(-3), attendance.StatusCheckedOut, 8, 5),
		rec("g1", dayOffset(-2), attendance.StatusLate, 8, 40),
		rec("g2", dayOffset(-4), attendance.StatusLate, 9, 0),
	}

	performance, err := ComputePerformance(records, roster("g1", "g2"), 5)
	require.NoError(t, err)
	require.Len(t, performance, 2)

	// Ranked by total attendance descending, so g1 first.
	g1 := performance[0]
	assert.Equal(t, "g1", g1.GuardID)
	assert.Equal(t, 2, g1.OnTime)
	assert.Equal(t, 1, g1.Late)
	assert.Equal(t, 2, g1.Absent)

	g2 := performance[1]
	assert.Equal(t, "g2", g2.GuardID)
	assert.Equal(t, 0, g2.OnTime)
	assert.Equal(t, 1, g2.Late)
	assert.Equal(t, 4, g2.Absent)
	assert.Equal(t, "09:00", g2.AverageCheckIn)
}

func TestComputePerformance_AbsentClampedAtZero(t *testing.T) {
	// A late record and an on-time record on the same date, window of 1.
	records := []attendance.Record{
		rec("g1", reportToday, attendance.StatusLate, 8, 30),
		rec("g1", reportToday, attendance.StatusCheckedOut, 14, 0),
	}

	performance, err := ComputePerformance(records, roster("g1"), 1)
	require.NoError(t, err)

	require.Len(t, performance, 1)
	assert.Equal(t, 1, performance[0].OnTime)
	assert.Equal(t, 1, performance[0].Late)
	assert.Equal(t, 0, performance[0].Absent)
}

func TestComputePerformance_ReEntrySameDayCountsOnce(t *testing.T) {
	records := []attendance.Record{
		rec("g1", reportToday, attendance.StatusCheckedOut, 8, 0),
		rec("g1", reportToday, attendance.StatusCheckedIn, 13, 0),
	}

	performance, err := ComputePerformance(records, roster("g1"), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, performance[0].OnTime)
	assert.Equal(t, 2, performance[0].Absent)
}

func TestComputeTrend(t *testing.T) {
	daily := []DayStats{
		{Total: 10, Attended: 5},
		{Total: 10, Attended: 5},
		{Total: 10, Attended: 5},
		{Total: 10, Attended: 8},
		{Total: 10, Attended: 8},
		{Total: 10, Attended: 8},
	}

	trend, err := ComputeTrend(daily)
	require.NoError(t, err)
	assert.Equal(t, 30, trend)
}

func TestComputeTrend_Negative(t *testing.T) {
	daily := []DayStats{
		{Total: 4, Attended: 4},
		{Total: 4, Attended: 4},
		{Total: 4, Attended: 4},
		{Total: 4, Attended: 2},
		{Total: 4, Attended: 2},
		{Total: 4, Attended: 2},
	}

	trend, err := ComputeTrend(daily)
	require.NoError(t, err)
	assert.Equal(t, -50, trend)
}

func TestComputeTrend_RequiresThreeBuckets(t *testing.T) {
	_, err := ComputeTrend([]DayStats{{Total: 1}, {Total: 1}})
	assert.Error(t, err)
}

func TestComputeSummary(t *testing.T) {
	daily := []DayStats{
		{Total: 4, Attended: 4, Late: 1},
		{Total: 4, Attended: 2, Late: 1},
	}

	s := ComputeSummary(daily, 12, 4)
	assert.Equal(t, 4, s.TotalGuards)
	assert.Equal(t, 75, s.AvgAttendancePct)
	assert.Equal(t, 33, s.LateRatePct)
	assert.Equal(t, 12, s.TrendPct)
}

func TestComputeSummary_EmptyWindow(t *testing.T) {
	s := ComputeSummary(nil, 0, 0)
	assert.Zero(t, s.AvgAttendancePct)
	assert.Zero(t, s.LateRatePct)
}
