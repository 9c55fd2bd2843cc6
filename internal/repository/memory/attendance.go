package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *store[attendance.Record]
}

func NewAttendanceRepository(seed []attendance.Record) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		store: newStore(seed, func(r attendance.Record) string { return r.ID }, attendance.ErrAttendanceNotFound).
			withClone(func(r attendance.Record) attendance.Record {
				r.PunchIn = clonePtr(r.PunchIn)
				r.PunchOut = clonePtr(r.PunchOut)
				return r
			}),
	}
}

// One record per employee per day.
func attendanceConflict(existing, r attendance.Record) error {
	if existing.EmployeeID == r.EmployeeID && existing.Date.Equal(r.Date) {
		return attendance.ErrAlreadyPunchedIn
	}
	return nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	return r.store.list(), nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return r.store.get(id)
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.Record) (attendance.Record, error) {
	if newRecord.ID == "" {
		newRecord.ID = newID()
	}
	return r.store.insert(newRecord, attendanceConflict)
}

// Replace implements attendance.AttendanceRepository. The record of the
// same employee and day keeps its ID.
func (r *attendanceRepositoryImpl) Replace(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if record.ID == "" {
		record.ID = newID()
	}
	return r.store.upsert(record, func(existing attendance.Record) bool {
		return existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date)
	}, func(existing attendance.Record, rec *attendance.Record) {
		rec.ID = existing.ID
	}), nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, patch attendance.Patch) (attendance.Record, error) {
	return r.store.update(id, patch.Apply, nil)
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
