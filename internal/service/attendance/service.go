package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
)

type AttendanceServiceImpl struct {
	tx             repository.Transactor
	attendanceRepo attendance.AttendanceRepository
	directory      *directory.Loader
	now            func() time.Time
}

func NewAttendanceService(
	tx repository.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	directory *directory.Loader,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		directory:      directory,
		now:            time.Now,
	}
}

// ListRecords implements attendance.AttendanceService.
// Records are listed newest day first.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, req attendance.ListAttendanceRequest) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	views := make([]attendance.View, len(records))
	for i, r := range records {
		views[i] = view(dir, r)
	}
	slices.SortStableFunc(views, func(a, b attendance.View) int {
		return b.Date.Compare(a.Date)
	})

	result, summary := listquery.Run(views, req.Query())

	items := make([]attendance.RecordResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, attendance.NewRecordResponse(v))
	}
	return attendance.ListAttendanceResponse{Items: items, Summary: summary, Meta: result.Meta()}, nil
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if _, ok := dir.Employee(req.EmployeeID); !ok {
		return attendance.RecordResponse{}, attendance.ErrEmployeeNotFound
	}

	now := s.now().UTC().Truncate(time.Minute)
	today := attendance.Day(now)
	if _, found, err := s.findDay(ctx, req.EmployeeID, today); err != nil {
		return attendance.RecordResponse{}, err
	} else if found {
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedIn
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = attendance.DefaultLocation
	}
	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       today,
		PunchIn:    &now,
		Status:     attendance.StatusPresent,
		Location:   location,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyPunchedIn) {
			return attendance.RecordResponse{}, err
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("Employee punched in", "employee_id", created.EmployeeID, "attendance_id", created.ID)
	return attendance.NewRecordResponse(view(dir, created)), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now().UTC().Truncate(time.Minute)
	record, found, err := s.findDay(ctx, req.EmployeeID, attendance.Day(now))
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !found || record.PunchIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotPunchedIn
	}
	if record.PunchOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	total, overtime := attendance.Worked(*record.PunchIn, now)
	status := attendance.Classify(total)
	updated, err := s.attendanceRepo.Update(ctx, record.ID, attendance.Patch{
		PunchOut:   &now,
		TotalHours: &total,
		Overtime:   &overtime,
		Status:     &status,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	slog.Info("Employee punched out", "employee_id", updated.EmployeeID, "total_hours", updated.TotalHours, "status", updated.Status)
	return attendance.NewRecordResponse(view(dir, updated)), nil
}

// MarkManual implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkManual(ctx context.Context, req attendance.ManualAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if _, ok := dir.Employee(req.EmployeeID); !ok {
		return attendance.RecordResponse{}, attendance.ErrEmployeeNotFound
	}

	created, err := s.attendanceRepo.Replace(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, attendance.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, err
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	slog.Info("Manual attendance recorded", "employee_id", created.EmployeeID, "date", created.Date.Format(time.DateOnly), "status", created.Status)
	return attendance.NewRecordResponse(view(dir, created)), nil
}

// MarkAbsentees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsentees(ctx context.Context, day time.Time) (int, error) {
	day = attendance.Day(day)

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		records, err := s.attendanceRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		seen := make(map[string]bool)
		for _, r := range records {
			if r.Date.Equal(day) {
				seen[r.EmployeeID] = true
			}
		}
		for _, e := range dir.Employees {
			if e.Status == employee.StatusInactive || seen[e.ID] {
				continue
			}
			if _, err := s.attendanceRepo.Create(ctx, attendance.Record{
				EmployeeID: e.ID,
				Date:       day,
				Status:     attendance.StatusAbsent,
			}); err != nil {
				return fmt.Errorf("failed to mark %s absent: %w", e.ID, err)
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func (s *AttendanceServiceImpl) findDay(ctx context.Context, employeeID string, day time.Time) (attendance.Record, bool, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to list attendance records: %w", err)
	}
	i := slices.IndexFunc(records, func(r attendance.Record) bool {
		return r.EmployeeID == employeeID && r.Date.Equal(day)
	})
	if i < 0 {
		return attendance.Record{}, false, nil
	}
	return records[i], true, nil
}

func view(dir *directory.Directory, r attendance.Record) attendance.View {
	v := attendance.View{Record: r}
	if e, ok := dir.Employee(r.EmployeeID); ok {
		v.EmployeeName = e.FullName()
		v.EmployeeCode = e.EmployeeCode
	}
	return v
}
