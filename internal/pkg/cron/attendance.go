package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/shift"
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	shiftRepo       shift.ShiftRepository
	guardRepo       guard.GuardRepository
	notificationSvc notification.Service
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	guardRepo guard.GuardRepository,
	notificationSvc notification.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		shiftRepo:       shiftRepo,
		guardRepo:       guardRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_guards", 1*time.Hour, j.MarkAbsentGuards)
}

// MarkAbsentGuards closes out yesterday's roster. Pending records become
// absent, and guards who had a shift but no record at all get an absent
// record inserted.
func (j *AttendanceJobs) MarkAbsentGuards(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent guards job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	dateStr := yesterday.Format("2006-01-02")

	flipped, err := j.attendanceRepo.MarkPendingAsAbsent(ctx, dateStr)
	if err != nil {
		return fmt.Errorf("failed to mark pending records absent: %w", err)
	}

	shifts, err := j.shiftRepo.ListByDate(ctx, dateStr)
	if err != nil {
		return fmt.Errorf("failed to list shifts for %s: %w", dateStr, err)
	}

	recorded, err := j.attendanceRepo.GuardIDsWithRecordOn(ctx, dateStr)
	if err != nil {
		return fmt.Errorf("failed to list recorded guards for %s: %w", dateStr, err)
	}
	hasRecord := make(map[string]struct{}, len(recorded))
	for _, id := range recorded {
		hasRecord[id] = struct{}{}
	}

	inserted := 0
	for _, sh := range shifts {
		if _, ok := hasRecord[sh.GuardID]; ok {
			continue
		}

		shiftID := sh.ID
		rec := attendance.Record{
			GuardID: sh.GuardID,
			ShiftID: &shiftID,
			Date:    attendance.DateOf(yesterday),
			Status:  attendance.StatusAbsent,
		}
		if _, err := j.attendanceRepo.Create(ctx, rec); err != nil {
			slog.Error("Cron: Failed to insert absence record",
				"guard_id", sh.GuardID,
				"date", dateStr,
				"error", err)
			continue
		}
		hasRecord[sh.GuardID] = struct{}{}

		if j.notificationSvc != nil {
			_ = j.notificationSvc.Notify(ctx, notification.CreateNotificationRequest{
				RecipientID: sh.GuardID,
				Type:        notification.TypeMarkedAbsent,
				Title:       "Marked Absent",
				Message:     fmt.Sprintf("You were marked absent for your shift on %s", dateStr),
			})
		}
		inserted++
	}

	slog.Info("Cron: Marked absent guards", "flipped_pending", flipped, "inserted", inserted, "date", dateStr)
	return nil
}
