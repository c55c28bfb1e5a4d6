package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	id, guard_id, shift_id, date, status,
	check_in_time, check_in_location, check_in_latitude, check_in_longitude,
	check_out_time, check_out_location, check_out_latitude, check_out_longitude,
	check_out_photo_url, notes, created_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.GuardID, &rec.ShiftID, &rec.Date, &rec.Status,
		&rec.CheckInTime, &rec.CheckInLocation, &rec.CheckInLatitude, &rec.CheckInLongitude,
		&rec.CheckOutTime, &rec.CheckOutLocation, &rec.CheckOutLatitude, &rec.CheckOutLongitude,
		&rec.CheckOutPhotoURL, &rec.Notes, &rec.CreatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			guard_id, shift_id, date, status,
			check_in_time, check_in_location, check_in_latitude, check_in_longitude,
			notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.GuardID,
		rec.ShiftID,
		rec.Date,
		rec.Status,
		rec.CheckInTime,
		rec.CheckInLocation,
		rec.CheckInLatitude,
		rec.CheckInLongitude,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// ReplaceCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) ReplaceCheckIn(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $3,
			check_in_time = $4,
			check_in_location = $5,
			check_in_latitude = $6,
			check_in_longitude = $7,
			check_out_time = NULL,
			check_out_location = NULL,
			check_out_latitude = 0,
			check_out_longitude = 0,
			check_out_photo_url = NULL
		WHERE guard_id = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query,
		rec.GuardID,
		rec.Date,
		rec.Status,
		rec.CheckInTime,
		rec.CheckInLocation,
		rec.CheckInLatitude,
		rec.CheckInLongitude,
	)
	if err != nil {
		return fmt.Errorf("failed to replace check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckOut(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $2,
			check_out_time = $3,
			check_out_location = $4,
			check_out_latitude = $5,
			check_out_longitude = $6,
			check_out_photo_url = $7
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.Status,
		rec.CheckOutTime,
		rec.CheckOutLocation,
		rec.CheckOutLatitude,
		rec.CheckOutLongitude,
		rec.CheckOutPhotoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, pgx.ErrNoRows
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// GetLatestForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetLatestForDate(ctx context.Context, guardID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE guard_id = $1 AND date = $2
		ORDER BY check_in_time DESC NULLS LAST
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, guardID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}
	return &rec, nil
}

// ListByGuard implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByGuard(ctx context.Context, guardID string, filter attendance.HistoryFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "guard_id = $1"
	args := []interface{}{guardID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC, check_in_time DESC NULLS LAST
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			a.id, a.guard_id, a.shift_id, a.date, a.status,
			a.check_in_time, a.check_in_location, a.check_in_latitude, a.check_in_longitude,
			a.check_out_time, a.check_out_location, a.check_out_latitude, a.check_out_longitude,
			a.check_out_photo_url, a.notes, a.created_at,
			g.full_name AS guard_name
		FROM attendance_records a
		LEFT JOIN guards g ON g.id = a.guard_id
		WHERE a.date = $1
		ORDER BY a.check_in_time DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.GuardID, &rec.ShiftID, &rec.Date, &rec.Status,
			&rec.CheckInTime, &rec.CheckInLocation, &rec.CheckInLatitude, &rec.CheckInLongitude,
			&rec.CheckOutTime, &rec.CheckOutLocation, &rec.CheckOutLatitude, &rec.CheckOutLongitude,
			&rec.CheckOutPhotoURL, &rec.Notes, &rec.CreatedAt,
			&rec.GuardName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// ListSince implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListSince(ctx context.Context, since string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date >= $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// GuardIDsWithRecordOn implements attendance.AttendanceRepository.
func (a *attendanceRepository) GuardIDsWithRecordOn(ctx context.Context, date string) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT DISTINCT guard_id FROM attendance_records WHERE date = $1`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query guard ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan guard id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guard ids: %w", err)
	}

	return ids, nil
}

// MarkPendingAsAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkPendingAsAbsent(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $1
		WHERE date = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, attendance.StatusAbsent, date, attendance.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to mark pending records absent: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByShift implements attendance.AttendanceRepository.
// Only seeded rows go; records with an actual check-in survive the shift.
func (a *attendanceRepository) DeleteByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE shift_id = $1 AND status = $2`

	if _, err := q.Exec(ctx, query, shiftID, attendance.StatusPending); err != nil {
		return fmt.Errorf("failed to delete seeded attendance records: %w", err)
	}
	return nil
}
