package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/shift"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
	"github.com/guardtrack/guardtrack-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	attendanceRepo  attendance.AttendanceRepository
	guardRepo       guard.GuardRepository
	notificationSvc notification.Service
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	guardRepo guard.GuardRepository,
	notificationSvc notification.Service,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
		attendanceRepo:  attendanceRepo,
		guardRepo:       guardRepo,
		notificationSvc: notificationSvc,
	}
}

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

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:               s.ID,
		GuardID:          s.GuardID,
		GuardName:        s.GuardName,
		Date:             s.Date.Format("2006-01-02"),
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		LocationName:     s.LocationName,
		LocationAddress:  s.LocationAddress,
		Notes:            s.Notes,
		AttendanceStatus: s.AttendanceStatus,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	creatorID, err := guardIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.guardRepo.GetByID(ctx, req.GuardID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, guard.ErrGuardNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get guard: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var created shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.ShiftRepository.Create(txCtx, shift.Shift{
			GuardID:         req.GuardID,
			Date:            date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			LocationName:    req.LocationName,
			LocationAddress: req.LocationAddress,
			Notes:           req.Notes,
			CreatedBy:       &creatorID,
		})
		if err != nil {
			return err
		}

		// Seed a pending record so the guard shows up in the roster and
		// the nightly job can mark no-shows absent.
		shiftID := created.ID
		_, err = s.attendanceRepo.Create(txCtx, attendance.Record{
			GuardID: req.GuardID,
			ShiftID: &shiftID,
			Date:    date,
			Status:  attendance.StatusPending,
		})
		if err != nil && !errors.Is(err, attendance.ErrDuplicateRecord) {
			return fmt.Errorf("failed to seed attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shift.ErrShiftOverlap) {
			return shift.ShiftResponse{}, shift.ErrShiftOverlap
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	if s.notificationSvc != nil {
		_ = s.notificationSvc.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: req.GuardID,
			SenderID:    &creatorID,
			Type:        notification.TypeShiftAssigned,
			Title:       "Shift Assigned",
			Message:     fmt.Sprintf("You have a shift on %s from %s at %s", req.Date, req.StartTime, req.LocationName),
		})
	}

	return toShiftResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(sh), nil
}

// ListShiftsByDate implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShiftsByDate(ctx context.Context, date string) ([]shift.ShiftResponse, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, attendance.ErrInvalidDate
	}

	shifts, err := s.ShiftRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// ListMyShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListMyShifts(ctx context.Context, fromDate string) ([]shift.ShiftResponse, error) {
	guardID, err := guardIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if fromDate == "" {
		fromDate = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", fromDate); err != nil {
		return nil, attendance.ErrInvalidDate
	}

	shifts, err := s.ShiftRepository.ListByGuard(ctx, guardID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.ShiftRepository.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	if s.notificationSvc != nil {
		_ = s.notificationSvc.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: updated.GuardID,
			Type:        notification.TypeShiftUpdated,
			Title:       "Shift Updated",
			Message:     fmt.Sprintf("Your shift on %s was updated", updated.Date.Format("2006-01-02")),
		})
	}

	return toShiftResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Seeded records go with the shift; actual check-ins stay because
		// they no longer reference it once the shift row is gone.
		if err := s.attendanceRepo.DeleteByShift(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete seeded attendance: %w", err)
		}
		if err := s.ShiftRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete shift: %w", err)
		}
		return nil
	})
}
