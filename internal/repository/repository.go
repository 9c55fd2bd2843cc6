// Package repository groups the stores a running service needs.
package repository

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
)

type Repositories struct {
	Employees     employee.EmployeeRepository
	Departments   department.DepartmentRepository
	Designations  designation.DesignationRepository
	LeaveTypes    leave.LeaveTypeRepository
	LeaveRequests leave.LeaveRequestRepository
	Payroll       payroll.PayrollRepository
	Attendance    attendance.AttendanceRepository
	Users         user.UserRepository

	Tx Transactor
}

// Transactor runs fn so that every repository call made with the context it
// receives commits or rolls back together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
