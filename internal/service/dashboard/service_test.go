package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) (*DashboardServiceImpl, repository.Repositories) {
	t.Helper()
	set, err := fixtures.Load(now)
	require.NoError(t, err)
	repos := memory.New(set)
	svc := NewDashboardService(
		directory.NewLoader(repos.Employees, repos.Departments, repos.Designations),
		repos.Attendance,
		repos.LeaveRequests,
	).(*DashboardServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, repos
}

func TestGetDashboard(t *testing.T) {
	// LR-014 (EMP-002, approved) covers 14-16 February.
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	svc, repos := newTestService(t, now)
	ctx := context.Background()

	in := now.Add(-time.Hour)
	_, err := repos.Attendance.Create(ctx, attendance.Record{
		EmployeeID: "EMP-004", Date: attendance.Day(now), PunchIn: &in, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = repos.Attendance.Create(ctx, attendance.Record{
		EmployeeID: "EMP-006", Date: attendance.Day(now), Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	dash, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, dash.TotalEmployees)
	assert.Equal(t, 11, dash.TotalDepartments)
	assert.Equal(t, 1, dash.PresentToday)
	assert.Equal(t, 1, dash.OnLeaveToday)
	assert.Equal(t, 10, dash.PendingApprovals)
	assert.Zero(t, dash.NewJoinersThisMonth)

	require.Len(t, dash.Departments, 11)
	assert.Equal(t, "Operations", dash.Departments[0].Name)
	total := 0
	for _, d := range dash.Departments {
		total += d.Headcount
	}
	assert.Equal(t, 12, total)
}

func TestGetDashboard_NewJoiners(t *testing.T) {
	svc, _ := newTestService(t, time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC))

	dash, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dash.NewJoinersThisMonth, "EMP-005 joined on 2024-06-01")
	assert.Zero(t, dash.PresentToday, "today is never seeded")
}
