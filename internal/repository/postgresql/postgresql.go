// Package postgresql implements the repositories over a pgx pool.
package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/jackc/pgx/v5"
)

// New builds every repository over db.
func New(db *database.DB) repository.Repositories {
	return repository.Repositories{
		Employees:     NewEmployeeRepository(db),
		Departments:   NewDepartmentRepository(db),
		Designations:  NewDesignationRepository(db),
		LeaveTypes:    NewLeaveTypeRepository(db),
		LeaveRequests: NewLeaveRequestRepository(db),
		Payroll:       NewPayrollRepository(db),
		Attendance:    NewAttendanceRepository(db),
		Users:         NewUserRepository(db),
		Tx:            NewTransactor(db),
	}
}

// Seed loads set into an empty database in one transaction. It reports
// false without writing when departments already exist.
func Seed(ctx context.Context, db *database.DB, set *fixtures.Set) (bool, error) {
	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&existing); err != nil {
		return false, fmt.Errorf("failed to count departments: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	repos := New(db)
	users := &userRepositoryImpl{db: db}

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)

		for _, d := range set.Departments {
			if _, err := repos.Departments.Create(txCtx, d); err != nil {
				return fmt.Errorf("seed department %s: %w", d.ID, err)
			}
		}
		for _, d := range set.Designations {
			if _, err := repos.Designations.Create(txCtx, d); err != nil {
				return fmt.Errorf("seed designation %s: %w", d.ID, err)
			}
		}
		for _, e := range set.Employees {
			if _, err := repos.Employees.Create(txCtx, e); err != nil {
				return fmt.Errorf("seed employee %s: %w", e.ID, err)
			}
		}
		for _, lt := range set.LeaveTypes {
			if _, err := repos.LeaveTypes.Create(txCtx, lt); err != nil {
				return fmt.Errorf("seed leave type %s: %w", lt.ID, err)
			}
		}
		for _, r := range set.LeaveRequests {
			if _, err := repos.LeaveRequests.Create(txCtx, r); err != nil {
				return fmt.Errorf("seed leave request %s: %w", r.ID, err)
			}
		}
		for _, r := range set.Payroll {
			if _, err := repos.Payroll.Create(txCtx, r); err != nil {
				return fmt.Errorf("seed payroll record %s: %w", r.ID, err)
			}
		}
		for _, r := range set.Attendance {
			if _, err := repos.Attendance.Create(txCtx, r); err != nil {
				return fmt.Errorf("seed attendance record %s: %w", r.ID, err)
			}
		}
		for _, u := range set.Users {
			if err := users.insertUser(txCtx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.Info("Database seeded from fixtures",
		"departments", len(set.Departments),
		"employees", len(set.Employees),
		"leave_requests", len(set.LeaveRequests),
		"payroll_records", len(set.Payroll),
	)
	return true, nil
}
