package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendance struct {
	attendance.AttendanceService
	days []time.Time
	err  error
}

func (f *fakeAttendance) MarkAbsentees(ctx context.Context, day time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.days = append(f.days, day)
	return 3, nil
}

func TestMarkAbsentEmployees(t *testing.T) {
	svc := &fakeAttendance{}
	jobs, err := NewAttendanceJobs(svc, "23:30")
	require.NoError(t, err)
	ctx := context.Background()

	clock := time.Date(2024, time.July, 10, 22, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return clock }

	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	assert.Empty(t, svc.days, "too early in the day")

	clock = time.Date(2024, time.July, 10, 23, 35, 0, 0, time.UTC)
	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	require.Len(t, svc.days, 1, "runs once per day")
	assert.Equal(t, time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC), svc.days[0])

	clock = time.Date(2024, time.July, 11, 23, 31, 0, 0, time.UTC)
	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	assert.Len(t, svc.days, 2)
}

func TestMarkAbsentEmployees_RetriesAfterFailure(t *testing.T) {
	svc := &fakeAttendance{err: errors.New("store down")}
	jobs, err := NewAttendanceJobs(svc, "00:00")
	require.NoError(t, err)
	jobs.now = func() time.Time { return time.Date(2024, time.July, 10, 8, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	assert.Error(t, jobs.MarkAbsentEmployees(ctx))

	svc.err = nil
	require.NoError(t, jobs.MarkAbsentEmployees(ctx))
	assert.Len(t, svc.days, 1)
}

func TestNewAttendanceJobs_InvalidTime(t *testing.T) {
	_, err := NewAttendanceJobs(&fakeAttendance{}, "late")
	assert.Error(t, err)
}

func TestScheduler(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()), "second start is refused")
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "no runs after Stop")
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first: boom")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_RejectsBadInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob("never", 0, func(ctx context.Context) error { return nil })
	assert.Error(t, s.Start(context.Background()))
}
