package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the headline counts of the home screen
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
