package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
)

const guardColumns = `
	id, email, full_name, phone, role, password_hash, avatar_url,
	shift_start_time, shift_end_time, location_name, location_address,
	created_by, created_at, updated_at`

type guardRepository struct {
	db *database.DB
}

func NewGuardRepository(db *database.DB) guard.GuardRepository {
	return &guardRepository{db: db}
}

func scanGuard(row pgx.Row) (guard.Guard, error) {
	var g guard.Guard
	err := row.Scan(
		&g.ID, &g.Email, &g.FullName, &g.Phone, &g.Role, &g.PasswordHash, &g.AvatarURL,
		&g.ShiftStartTime, &g.ShiftEndTime, &g.LocationName, &g.LocationAddress,
		&g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// Create implements guard.GuardRepository.
func (r *guardRepository) Create(ctx context.Context, g guard.Guard) (guard.Guard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO guards (
			email, full_name, phone, role, password_hash,
			shift_start_time, shift_end_time, location_name, location_address,
			created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.Email,
		g.FullName,
		g.Phone,
		g.Role,
		g.PasswordHash,
		g.ShiftStartTime,
		g.ShiftEndTime,
		g.LocationName,
		g.LocationAddress,
		g.CreatedBy,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return guard.Guard{}, guard.ErrEmailExists
		}
		return guard.Guard{}, fmt.Errorf("failed to create guard: %w", err)
	}

	return g, nil
}

// GetByID implements guard.GuardRepository.
func (r *guardRepository) GetByID(ctx context.Context, id string) (guard.Guard, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + guardColumns + ` FROM guards WHERE id = $1`

	g, err := scanGuard(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guard.Guard{}, pgx.ErrNoRows
		}
		return guard.Guard{}, fmt.Errorf("failed to get guard: %w", err)
	}
	return g, nil
}

// GetByEmail implements guard.GuardRepository.
func (r *guardRepository) GetByEmail(ctx context.Context, email string) (guard.Guard, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + guardColumns + ` FROM guards WHERE LOWER(email) = LOWER($1)`

	g, err := scanGuard(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guard.Guard{}, pgx.ErrNoRows
		}
		return guard.Guard{}, fmt.Errorf("failed to get guard by email: %w", err)
	}
	return g, nil
}

// ListByRole implements guard.GuardRepository.
func (r *guardRepository) ListByRole(ctx context.Context, role guard.Role) ([]guard.Guard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + guardColumns + `
		FROM guards
		WHERE role = $1
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query guards: %w", err)
	}
	defer rows.Close()

	var guards []guard.Guard
	for rows.Next() {
		g, err := scanGuard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guard: %w", err)
		}
		guards = append(guards, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guards: %w", err)
	}

	return guards, nil
}

// Update implements guard.GuardRepository.
func (r *guardRepository) Update(ctx context.Context, g guard.Guard) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE guards
		SET full_name = $2,
			phone = $3,
			avatar_url = $4,
			shift_start_time = $5,
			shift_end_time = $6,
			location_name = $7,
			location_address = $8,
			updated_at = $9
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		g.ID,
		g.FullName,
		g.Phone,
		g.AvatarURL,
		g.ShiftStartTime,
		g.ShiftEndTime,
		g.LocationName,
		g.LocationAddress,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update guard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements guard.GuardRepository.
func (r *guardRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM guards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
