package dashboard

import "context"

// TodayStats combines the day's attendance counts in a single query
type TodayStats struct {
	TotalGuards int64
	Attended    int64
	Exited      int64
	Late        int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetTodayStats returns total/attended/exited/late counts for a date
	GetTodayStats(ctx context.Context, date string) (*TodayStats, error)

	// GetTodayFeed returns the day's records with guard names,
	// check_in_time descending
	GetTodayFeed(ctx context.Context, date string, limit int) ([]AttendanceFeedItem, error)
}
