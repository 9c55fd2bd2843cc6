package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	directory      *directory.Loader
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	now            func() time.Time
}

func NewDashboardService(
	directory *directory.Loader,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		directory:      directory,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		now:            time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	now := s.now().UTC()
	today := attendance.Day(now)

	var (
		dir      *directory.Directory
		records  []attendance.Record
		requests []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dir, err = s.directory.Load(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	resp := dashboard.DashboardResponse{
		TotalEmployees:   len(dir.Employees),
		TotalDepartments: len(dir.Departments),
		Departments:      make([]dashboard.DepartmentHeadcount, 0, len(dir.Departments)),
	}

	for _, e := range dir.Employees {
		if e.DateOfJoining.Year() == now.Year() && e.DateOfJoining.Month() == now.Month() {
			resp.NewJoinersThisMonth++
		}
	}

	for _, r := range records {
		if r.Date.Equal(today) && r.PunchIn != nil && r.Status != attendance.StatusAbsent {
			resp.PresentToday++
		}
	}

	onLeave := make(map[string]bool)
	for _, r := range requests {
		switch {
		case r.Status == leave.StatusPending:
			resp.PendingApprovals++
		case r.Status == leave.StatusApproved && r.Covers(today):
			onLeave[r.EmployeeID] = true
		}
	}
	resp.OnLeaveToday = len(onLeave)

	headcount := dir.Headcount()
	for _, dep := range dir.Departments {
		resp.Departments = append(resp.Departments, dashboard.DepartmentHeadcount{
			ID:        dep.ID,
			Name:      dep.Name,
			Headcount: headcount[dep.ID],
		})
	}

	return resp, nil
}
