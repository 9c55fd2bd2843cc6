package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
)

// CheckInterval is how often the absentee job wakes up to see whether its
// time of day has come.
const CheckInterval = 5 * time.Minute

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	runAt         time.Duration
	now           func() time.Time

	mu      sync.Mutex
	lastDay time.Time
}

// NewAttendanceJobs runs the absentee pass once a day at runAt, an HH:MM
// UTC wall clock.
func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, runAt string) (*AttendanceJobs, error) {
	t, err := time.Parse("15:04", runAt)
	if err != nil {
		return nil, fmt.Errorf("invalid absentee check time %q: %w", runAt, err)
	}
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		runAt:         time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute,
		now:           time.Now,
	}, nil
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", CheckInterval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees records Absent for everyone without attendance today.
// It does nothing before the configured time or when today was already done.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now().UTC()
	today := attendance.Day(now)
	if now.Sub(today) < j.runAt {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lastDay.Equal(today) {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", today.Format(time.DateOnly))
	marked, err := j.attendanceSvc.MarkAbsentees(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}
	j.lastDay = today

	slog.Info("Cron: Marked absent employees", "date", today.Format(time.DateOnly), "count", marked)
	return nil
}
