package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/incident"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
)

const incidentColumns = `
	i.id, i.guard_id, i.title, i.description, i.location,
	i.latitude, i.longitude, i.photo_url, i.status,
	i.resolved_by, i.resolved_at, i.created_at, i.updated_at`

type incidentRepository struct {
	db *database.DB
}

func NewIncidentRepository(db *database.DB) incident.IncidentRepository {
	return &incidentRepository{db: db}
}

func scanIncident(row pgx.Row, withGuardName bool) (incident.Incident, error) {
	var inc incident.Incident
	dest := []interface{}{
		&inc.ID, &inc.GuardID, &inc.Title, &inc.Description, &inc.Location,
		&inc.Latitude, &inc.Longitude, &inc.PhotoURL, &inc.Status,
		&inc.ResolvedBy, &inc.ResolvedAt, &inc.CreatedAt, &inc.UpdatedAt,
	}
	if withGuardName {
		dest = append(dest, &inc.GuardName)
	}
	return inc, row.Scan(dest...)
}

// Create implements incident.IncidentRepository.
func (r *incidentRepository) Create(ctx context.Context, inc incident.Incident) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incidents (
			guard_id, title, description, location, latitude, longitude,
			photo_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		inc.GuardID,
		inc.Title,
		inc.Description,
		inc.Location,
		inc.Latitude,
		inc.Longitude,
		inc.PhotoURL,
		inc.Status,
	).Scan(&inc.ID, &inc.CreatedAt, &inc.UpdatedAt)

	if err != nil {
		return incident.Incident{}, fmt.Errorf("failed to create incident: %w", err)
	}

	return inc, nil
}

// GetByID implements incident.IncidentRepository.
func (r *incidentRepository) GetByID(ctx context.Context, id string) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + incidentColumns + `, g.full_name AS guard_name
		FROM incidents i
		LEFT JOIN guards g ON g.id = i.guard_id
		WHERE i.id = $1
	`

	inc, err := scanIncident(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incident.Incident{}, incident.ErrIncidentNotFound
		}
		return incident.Incident{}, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

func (r *incidentRepository) list(ctx context.Context, baseWhere string, args []interface{}, argIdx int, filter incident.IncidentFilter) ([]incident.Incident, int64, error) {
	q := GetQuerier(ctx, r.db)

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND i.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM incidents i WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+incidentColumns+`, g.full_name AS guard_name
		FROM incidents i
		LEFT JOIN guards g ON g.id = i.guard_id
		WHERE %s
		ORDER BY i.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	var incidents []incident.Incident
	for rows.Next() {
		inc, err := scanIncident(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate incidents: %w", err)
	}

	return incidents, total, nil
}

// List implements incident.IncidentRepository.
func (r *incidentRepository) List(ctx context.Context, filter incident.IncidentFilter) ([]incident.Incident, int64, error) {
	return r.list(ctx, "TRUE", nil, 1, filter)
}

// ListByGuard implements incident.IncidentRepository.
func (r *incidentRepository) ListByGuard(ctx context.Context, guardID string, filter incident.IncidentFilter) ([]incident.Incident, int64, error) {
	return r.list(ctx, "i.guard_id = $1", []interface{}{guardID}, 2, filter)
}

// UpdateStatus implements incident.IncidentRepository.
func (r *incidentRepository) UpdateStatus(ctx context.Context, id string, status incident.Status, reviewerID string) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()

	var resolvedBy *string
	var resolvedAt *time.Time
	if status == incident.StatusResolved {
		resolvedBy = &reviewerID
		resolvedAt = &now
	}

	query := `
		UPDATE incidents i
		SET status = $2,
			resolved_by = $3,
			resolved_at = $4,
			updated_at = $5
		WHERE i.id = $1
		RETURNING ` + incidentColumns + `
	`

	inc, err := scanIncident(q.QueryRow(ctx, query, id, status, resolvedBy, resolvedAt, now), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incident.Incident{}, incident.ErrIncidentNotFound
		}
		return incident.Incident{}, fmt.Errorf("failed to update incident status: %w", err)
	}
	return inc, nil
}
