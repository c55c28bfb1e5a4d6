package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

// NoCheckIns is rendered when a guard has no check-in times in the window.
const NoCheckIns = "--:--"

// TrendWindow is how many leading/trailing day buckets feed the trend delta.
const TrendWindow = 3

const dateLayout = "2006-01-02"

func windowDaysError(windowDays int) error {
	return validator.ValidationErrors{{
		Field:   "window_days",
		Message: fmt.Sprintf("window_days must be positive, got %d", windowDays),
	}}
}

// ComputeDailyStats builds one bucket per calendar day over the trailing
// window ending today. attended and late count distinct guards per day, so a
// guard who checked out and re-entered counts once. A guard with no record
// on a day is absent; absent is derived from attended and never negative.
//
// records may arrive in any order and may span dates outside the window;
// out-of-window dates are ignored.
func ComputeDailyStats(records []attendance.Record, guards []guard.Guard, windowDays int, today time.Time) ([]DayStats, error) {
	if windowDays <= 0 {
		return nil, windowDaysError(windowDays)
	}

	attendedByDay := make(map[string]map[string]struct{})
	lateByDay := make(map[string]map[string]struct{})
	for _, rec := range records {
		day := rec.Date.Format(dateLayout)
		if rec.Status.Attended() {
			if attendedByDay[day] == nil {
				attendedByDay[day] = make(map[string]struct{})
			}
			attendedByDay[day][rec.GuardID] = struct{}{}
		}
		if rec.Status == attendance.StatusLate {
			if lateByDay[day] == nil {
				lateByDay[day] = make(map[string]struct{})
			}
			lateByDay[day][rec.GuardID] = struct{}{}
		}
	}

	daily := make([]DayStats, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := today.AddDate(0, 0, -(windowDays - 1 - i)).Format(dateLayout)
		stats := DayStats{
			Date:     day,
			Total:    len(guards),
			Attended: len(attendedByDay[day]),
			Late:     len(lateByDay[day]),
		}
		stats.Absent = stats.Total - stats.Attended
		if stats.Absent < 0 {
			stats.Absent = 0
		}
		daily = append(daily, stats)
	}

	return daily, nil
}

// ComputePerformance summarises each guard over the window. records must
// already be scoped to the window (the repository fetches date >= start).
// onTime and late count distinct dates, so re-entries collapse. Guards are
// ranked by total attendance (onTime + late) descending; ties keep roster
// order.
func ComputePerformance(records []attendance.Record, guards []guard.Guard, windowDays int) ([]GuardPerformance, error) {
	if windowDays <= 0 {
		return nil, windowDaysError(windowDays)
	}

	type guardDays struct {
		onTime       map[string]struct{}
		late         map[string]struct{}
		checkInTotal int
		checkInCount int
	}
	byGuard := make(map[string]*guardDays, len(guards))
	for _, g := range guards {
		byGuard[g.ID] = &guardDays{
			onTime: make(map[string]struct{}),
			late:   make(map[string]struct{}),
		}
	}

	for _, rec := range records {
		gd, ok := byGuard[rec.GuardID]
		if !ok {
			continue
		}
		day := rec.Date.Format(dateLayout)
		switch rec.Status {
		case attendance.StatusCheckedIn, attendance.StatusCheckedOut:
			gd.onTime[day] = struct{}{}
		case attendance.StatusLate:
			gd.late[day] = struct{}{}
		}
		if rec.CheckInTime != nil {
			gd.checkInTotal += rec.CheckInTime.Hour()*60 + rec.CheckInTime.Minute()
			gd.checkInCount++
		}
	}

	performance := make([]GuardPerformance, 0, len(guards))
	for _, g := range guards {
		gd := byGuard[g.ID]
		onTime := len(gd.onTime)
		late := len(gd.late)

		// A late and an on-time record on the same date would push the raw
		// subtraction negative; clamped to zero.
		absent := windowDays - onTime - late
		if absent < 0 {
			absent = 0
		}

		performance = append(performance, GuardPerformance{
			GuardID:        g.ID,
			GuardName:      g.FullName,
			TotalDays:      windowDays,
			OnTime:         onTime,
			Late:           late,
			Absent:         absent,
			AverageCheckIn: formatAverageCheckIn(gd.checkInTotal, gd.checkInCount),
		})
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].OnTime+performance[i].Late > performance[j].OnTime+performance[j].Late
	})

	return performance, nil
}

// formatAverageCheckIn renders the mean check-in minute-of-day as HH:MM.
// Simple arithmetic mean; one bad check-in time skews it, by contract.
func formatAverageCheckIn(totalMinutes, count int) string {
	if count == 0 {
		return NoCheckIns
	}
	avg := int(math.Round(float64(totalMinutes) / float64(count)))
	return fmt.Sprintf("%02d:%02d", avg/60, avg%60)
}

// ComputeTrend compares mean attendance ratio over the last TrendWindow
// buckets against the first TrendWindow buckets and returns the rounded
// percentage-point delta. Windows shorter than TrendWindow buckets are
// rejected rather than producing NaN.
func ComputeTrend(daily []DayStats) (int, error) {
	if len(daily) < TrendWindow {
		return 0, validator.ValidationErrors{{
			Field:   "window_days",
			Message: fmt.Sprintf("trend requires at least %d day buckets, got %d", TrendWindow, len(daily)),
		}}
	}

	ratio := func(days []DayStats) float64 {
		var sum float64
		for _, d := range days {
			if d.Total > 0 {
				sum += float64(d.Attended) / float64(d.Total)
			}
		}
		return sum / float64(len(days))
	}

	recentAvg := ratio(daily[len(daily)-TrendWindow:])
	olderAvg := ratio(daily[:TrendWindow])
	return int(math.Round((recentAvg - olderAvg) * 100)), nil
}

// ComputeSummary derives the headline percentages from the day buckets.
func ComputeSummary(daily []DayStats, trend int, totalGuards int) Summary {
	var attended, possible, late int
	for _, d := range daily {
		attended += d.Attended
		possible += d.Total
		late += d.Late
	}

	s := Summary{TotalGuards: totalGuards, TrendPct: trend}
	if possible > 0 {
		s.AvgAttendancePct = int(math.Round(float64(attended) / float64(possible) * 100))
	}
	if attended > 0 {
		s.LateRatePct = int(math.Round(float64(late) / float64(attended) * 100))
	}
	return s
}
