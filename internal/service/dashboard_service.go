package service

import (
	"fmt"

	"kitchary/internal/domain"
)

const recentOrderLimit = 5

type DashboardService struct {
	stats StatsRepository
}

func NewDashboardService(stats StatsRepository) *DashboardService {
	return &DashboardService{stats: stats}
}

// Summary aggregates the admin view. Every number is computed as of call
// time; an empty database yields a zeroed summary, not an error.
func (s *DashboardService) Summary() (domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	var err error

	if summary.TotalOrders, err = s.stats.CountOrders(); err != nil {
		return summary, fmt.Errorf("failed to count orders: %w", err)
	}
	if summary.TotalRevenue, err = s.stats.CompletedRevenue(); err != nil {
		return summary, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if summary.PendingPayments, err = s.stats.CountPendingPayments(); err != nil {
		return summary, fmt.Errorf("failed to count pending payments: %w", err)
	}
	if summary.MenuItems, err = s.stats.CountMenuItems(); err != nil {
		return summary, fmt.Errorf("failed to count menu items: %w", err)
	}
	if summary.RecentOrders, err = s.stats.RecentOrders(recentOrderLimit); err != nil {
		return summary, fmt.Errorf("failed to list recent orders: %w", err)
	}

	if summary.RecentOrders == nil {
		summary.RecentOrders = []domain.Order{}
	}
	return summary, nil
}
