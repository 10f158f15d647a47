package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kitchary/internal/domain"
	"kitchary/internal/mocks"
	"kitchary/internal/service"
)

func TestDashboardService_Summary_EmptyDatabase(t *testing.T) {
	stats := mocks.NewStatsRepository(t)
	svc := service.NewDashboardService(stats)

	stats.On("CountOrders").Return(0, nil).Once()
	stats.On("CompletedRevenue").Return(0.0, nil).Once()
	stats.On("CountPendingPayments").Return(0, nil).Once()
	stats.On("CountMenuItems").Return(0, nil).Once()
	stats.On("RecentOrders", 5).Return(nil, nil).Once()

	summary, err := svc.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0, summary.PendingPayments)
	assert.Equal(t, 0, summary.MenuItems)
	assert.NotNil(t, summary.RecentOrders)
	assert.Empty(t, summary.RecentOrders)
}

func TestDashboardService_Summary_Populated(t *testing.T) {
	stats := mocks.NewStatsRepository(t)
	svc := service.NewDashboardService(stats)

	recent := []domain.Order{
		{ID: 3, UserID: 11, TotalAmount: 25.98, CreatedAt: time.Now()},
		{ID: 2, UserID: 12, TotalAmount: 8.25, CreatedAt: time.Now().Add(-time.Hour)},
	}

	stats.On("CountOrders").Return(3, nil).Once()
	stats.On("CompletedRevenue").Return(34.23, nil).Once()
	stats.On("CountPendingPayments").Return(1, nil).Once()
	stats.On("CountMenuItems").Return(6, nil).Once()
	stats.On("RecentOrders", 5).Return(recent, nil).Once()

	summary, err := svc.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 34.23, summary.TotalRevenue)
	assert.Equal(t, 1, summary.PendingPayments)
	assert.Equal(t, 6, summary.MenuItems)
	assert.Equal(t, recent, summary.RecentOrders)
}

func TestDashboardService_Summary_RepositoryError(t *testing.T) {
	stats := mocks.NewStatsRepository(t)
	svc := service.NewDashboardService(stats)

	stats.On("CountOrders").Return(0, assert.AnError).Once()

	_, err := svc.Summary()
	assert.Error(t, err)
}
