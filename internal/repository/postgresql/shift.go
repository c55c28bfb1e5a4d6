package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/shift"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
)

const shiftColumns = `
	id, guard_id, date, start_time, end_time, location_name,
	location_address, notes, created_by, created_at, updated_at`

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.GuardID, &s.Date, &s.StartTime, &s.EndTime, &s.LocationName,
		&s.LocationAddress, &s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			guard_id, date, start_time, end_time, location_name,
			location_address, notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.GuardID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.LocationName,
		s.LocationAddress,
		s.Notes,
		s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrShiftOverlap
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, pgx.ErrNoRows
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// ListByDate implements shift.ShiftRepository.
func (r *shiftRepository) ListByDate(ctx context.Context, date string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.id, s.guard_id, s.date, s.start_time, s.end_time, s.location_name,
			s.location_address, s.notes, s.created_by, s.created_at, s.updated_at,
			g.full_name AS guard_name,
			a.status AS attendance_status
		FROM shifts s
		LEFT JOIN guards g ON g.id = s.guard_id
		LEFT JOIN attendance_records a ON a.guard_id = s.guard_id AND a.date = s.date
		WHERE s.date = $1
		ORDER BY s.start_time ASC, g.full_name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.GuardID, &s.Date, &s.StartTime, &s.EndTime, &s.LocationName,
			&s.LocationAddress, &s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
			&s.GuardName,
			&s.AttendanceStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// ListByGuard implements shift.ShiftRepository.
func (r *shiftRepository) ListByGuard(ctx context.Context, guardID string, fromDate string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE guard_id = $1 AND date >= $2
		ORDER BY date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, guardID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = COALESCE($2, start_time),
			end_time = COALESCE($3, end_time),
			location_name = COALESCE($4, location_name),
			location_address = COALESCE($5, location_address),
			notes = COALESCE($6, notes),
			updated_at = $7
		WHERE id = $1
		RETURNING ` + shiftColumns + `
	`

	s, err := scanShift(q.QueryRow(ctx, query,
		req.ID,
		req.StartTime,
		req.EndTime,
		req.LocationName,
		req.LocationAddress,
		req.Notes,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, pgx.ErrNoRows
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return s, nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
