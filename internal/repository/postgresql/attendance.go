package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const attendanceColumns = `id, employee_id, date, punch_in, punch_out, total_hours, overtime, status, location, manual`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row scanner) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Date, &r.PunchIn, &r.PunchOut,
		&r.TotalHours, &r.Overtime, &r.Status, &r.Location, &r.Manual,
	)
	return r, noRows(err, attendance.ErrAttendanceNotFound)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records ORDER BY date, employee_id`
	return queryAll(ctx, q, query, scanAttendance)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	if rec.ID == "" {
		rec.ID = newID()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, punch_in, punch_out, total_hours, overtime, status, location, manual
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.PunchIn, rec.PunchOut,
		rec.TotalHours, rec.Overtime, string(rec.Status), rec.Location, rec.Manual,
	)
	if err != nil {
		if _, ok := constraintViolation(err, codeUniqueViolation); ok {
			return attendance.Record{}, attendance.ErrAlreadyPunchedIn
		}
		if _, ok := constraintViolation(err, codeForeignKeyViolation); ok {
			return attendance.Record{}, attendance.ErrEmployeeNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}
	return rec, nil
}

// Replace implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Replace(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	if rec.ID == "" {
		rec.ID = newID()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, punch_in, punch_out, total_hours, overtime, status, location, manual
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			punch_in = EXCLUDED.punch_in,
			punch_out = EXCLUDED.punch_out,
			total_hours = EXCLUDED.total_hours,
			overtime = EXCLUDED.overtime,
			status = EXCLUDED.status,
			location = EXCLUDED.location,
			manual = EXCLUDED.manual
		RETURNING ` + attendanceColumns
	saved, err := scanAttendance(q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.PunchIn, rec.PunchOut,
		rec.TotalHours, rec.Overtime, string(rec.Status), rec.Location, rec.Manual,
	))
	if err != nil {
		if _, ok := constraintViolation(err, codeForeignKeyViolation); ok {
			return attendance.Record{}, attendance.ErrEmployeeNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return saved, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, patch attendance.Patch) (attendance.Record, error) {
	set := map[string]any{}
	if patch.PunchOut != nil {
		set["punch_out"] = *patch.PunchOut
	}
	if patch.TotalHours != nil {
		set["total_hours"] = *patch.TotalHours
	}
	if patch.Overtime != nil {
		set["overtime"] = *patch.Overtime
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	return updateReturning(ctx, GetQuerier(ctx, r.db), "attendance_records", attendanceColumns, id, set, scanAttendance)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "attendance_records", id, attendance.ErrAttendanceNotFound)
}
