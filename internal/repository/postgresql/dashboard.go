package postgresql

import (
	"context"
	"fmt"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/dashboard"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetTodayStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetTodayStats(ctx context.Context, date string) (*dashboard.TodayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM guards WHERE role = 'security') AS total_guards,
			COUNT(DISTINCT a.guard_id) FILTER (WHERE a.status IN ('checked_in', 'checked_out', 'late')) AS attended,
			COUNT(DISTINCT a.guard_id) FILTER (WHERE a.status = 'checked_out') AS exited,
			COUNT(DISTINCT a.guard_id) FILTER (WHERE a.status = 'late') AS late
		FROM attendance_records a
		WHERE a.date = $1
	`

	var stats dashboard.TodayStats
	err := q.QueryRow(ctx, query, date).Scan(
		&stats.TotalGuards,
		&stats.Attended,
		&stats.Exited,
		&stats.Late,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get today stats: %w", err)
	}

	return &stats, nil
}

// GetTodayFeed implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetTodayFeed(ctx context.Context, date string, limit int) ([]dashboard.AttendanceFeedItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.guard_id, COALESCE(g.full_name, ''), a.status,
			to_char(a.check_in_time, 'HH24:MI'),
			to_char(a.check_out_time, 'HH24:MI'),
			a.check_in_location
		FROM attendance_records a
		LEFT JOIN guards g ON g.id = a.guard_id
		WHERE a.date = $1
		ORDER BY a.check_in_time DESC NULLS LAST
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, date, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query today feed: %w", err)
	}
	defer rows.Close()

	var feed []dashboard.AttendanceFeedItem
	for rows.Next() {
		var item dashboard.AttendanceFeedItem
		err := rows.Scan(
			&item.RecordID,
			&item.GuardID,
			&item.GuardName,
			&item.Status,
			&item.CheckIn,
			&item.CheckOut,
			&item.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed item: %w", err)
		}
		feed = append(feed, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feed items: %w", err)
	}

	return feed, nil
}
