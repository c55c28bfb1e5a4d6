package dashboard

import "context"

// DashboardService defines the interface for the supervisor home screen
type DashboardService interface {
	// GetDashboard returns today's stats and feed using parallel queries
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
