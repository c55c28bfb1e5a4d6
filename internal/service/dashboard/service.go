package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/dashboard"
)

const feedLimit = 20

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard returns today's stats and feed using parallel queries.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	date := time.Now().UTC().Format("2006-01-02")

	var (
		stats *dashboard.TodayStats
		feed  []dashboard.AttendanceFeedItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.GetTodayStats(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to get today's stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		feed, err = s.GetTodayFeed(gCtx, date, feedLimit)
		if err != nil {
			return fmt.Errorf("failed to get today's feed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Stats: dashboard.TodayStatsResponse{
			TotalGuards: stats.TotalGuards,
			Attended:    stats.Attended,
			Exited:      stats.Exited,
			Late:        stats.Late,
			Date:        date,
		},
		Feed: feed,
	}, nil
}
