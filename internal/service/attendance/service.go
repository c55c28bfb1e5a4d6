package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/utils"
	"github.com/guardtrack/guardtrack-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	guard.GuardRepository
	fileService file.FileService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	guardRepo guard.GuardRepository,
	fileService file.FileService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		GuardRepository:      guardRepo,
		fileService:          fileService,
	}
}

// guardIDFromContext extracts guard_id from JWT claims
func guardIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	guardID, ok := claims["guard_id"].(string)
	if !ok || guardID == "" {
		return "", fmt.Errorf("guard_id claim is missing or invalid")
	}
	return guardID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                rec.ID,
		GuardID:           rec.GuardID,
		GuardName:         rec.GuardName,
		ShiftID:           rec.ShiftID,
		Date:              rec.Date.Format("2006-01-02"),
		Status:            string(rec.Status),
		CheckInTime:       timePtrToString(rec.CheckInTime),
		CheckInLocation:   rec.CheckInLocation,
		CheckInLatitude:   rec.CheckInLatitude,
		CheckInLongitude:  rec.CheckInLongitude,
		CheckOutTime:      timePtrToString(rec.CheckOutTime),
		CheckOutLocation:  rec.CheckOutLocation,
		CheckOutLatitude:  rec.CheckOutLatitude,
		CheckOutLongitude: rec.CheckOutLongitude,
		CheckOutPhotoURL:  rec.CheckOutPhotoURL,
		Notes:             rec.Notes,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	now := time.Now().UTC()

	guardID, err := guardIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	g, err := a.GuardRepository.GetByID(ctx, guardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, guard.ErrGuardNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get guard: %w", err)
	}

	existing, err := a.AttendanceRepository.GetLatestForDate(ctx, guardID, attendance.DateOf(now).Format("2006-01-02"))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	location := req.Location
	if location == "" {
		location = utils.FormatCoordinates(req.Latitude, req.Longitude)
	}

	decision, err := attendance.EvaluateCheckIn(existing, guardID, now, g.ShiftStartTime, attendance.Evidence{
		Location:  location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	switch decision.Action {
	case attendance.ActionInsert:
		created, err := a.AttendanceRepository.Create(ctx, decision.Record)
		if err == nil {
			return toRecordResponse(created), nil
		}
		// A concurrent check-in can land between the read and the insert.
		// The unique constraint fires and the write degrades to a replace.
		if !errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		fallthrough
	case attendance.ActionReplace:
		if err := a.AttendanceRepository.ReplaceCheckIn(ctx, decision.Record); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to replace attendance record: %w", err)
		}
	}

	latest, err := a.AttendanceRepository.GetLatestForDate(ctx, guardID, attendance.DateOf(now).Format("2006-01-02"))
	if err != nil || latest == nil {
		return toRecordResponse(decision.Record), nil
	}
	return toRecordResponse(*latest), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	now := time.Now().UTC()

	guardID, err := guardIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := a.AttendanceRepository.GetLatestForDate(ctx, guardID, attendance.DateOf(now).Format("2006-01-02"))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if !attendance.CanCheckOut(existing) {
		if existing == nil {
			return attendance.RecordResponse{}, attendance.ErrNoActiveAttendance
		}
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}

	photoURL, err := a.fileService.UploadCheckOutPhoto(ctx, guardID, attendance.DateOf(now), req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upload check-out photo: %w", err)
	}
	req.PhotoURL = &photoURL

	location := req.Location
	if location == "" {
		location = utils.FormatCoordinates(req.Latitude, req.Longitude)
	}

	updated, err := attendance.EvaluateCheckOut(existing, now, attendance.Evidence{
		Location:  location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := a.AttendanceRepository.UpdateCheckOut(ctx, updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toRecordResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	guardID, err := guardIDFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := time.Now().UTC()
	existing, err := a.AttendanceRepository.GetLatestForDate(ctx, guardID, attendance.DateOf(now).Format("2006-01-02"))
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	resp := attendance.TodayResponse{
		CanCheckIn:  attendance.CanCheckIn(existing),
		CanCheckOut: attendance.CanCheckOut(existing),
	}
	if existing != nil {
		record := toRecordResponse(*existing)
		resp.Record = &record
	}
	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	guardID, err := guardIDFromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByGuard(ctx, guardID, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    fmt.Sprintf("%d of %d", len(responses), total),
		Records:    responses,
	}, nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, attendance.ErrInvalidDate
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}
	return responses, nil
}
