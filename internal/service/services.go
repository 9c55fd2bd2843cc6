// Package service wires the per-entity services over one set of repositories.
package service

import (
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	attendanceService "github.com/cmlabs-hris/hris-admin-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/hris-admin-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-admin-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hris-admin-go/internal/service/department"
	designationService "github.com/cmlabs-hris/hris-admin-go/internal/service/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
	employeeService "github.com/cmlabs-hris/hris-admin-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-admin-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-admin-go/internal/service/payroll"
)

type Services struct {
	Employee    employee.EmployeeService
	Department  department.DepartmentService
	Designation designation.DesignationService
	Leave       leave.LeaveService
	Payroll     payroll.PayrollService
	Attendance  attendance.AttendanceService
	Dashboard   dashboard.DashboardService
	// Auth is nil when no token service is given.
	Auth auth.AuthService
}

func New(repos repository.Repositories, jwtService jwt.Service) Services {
	dir := directory.NewLoader(repos.Employees, repos.Departments, repos.Designations)

	s := Services{
		Employee:    employeeService.NewEmployeeService(repos.Employees, repos.Departments, repos.Designations),
		Department:  departmentService.NewDepartmentService(repos.Departments, repos.Employees),
		Designation: designationService.NewDesignationService(repos.Designations, repos.Departments, repos.Employees),
		Leave:       leaveService.NewLeaveService(repos.LeaveTypes, repos.LeaveRequests, dir),
		Payroll:     payrollService.NewPayrollService(repos.Tx, repos.Payroll, dir),
		Attendance:  attendanceService.NewAttendanceService(repos.Tx, repos.Attendance, dir),
		Dashboard:   dashboardService.NewDashboardService(dir, repos.Attendance, repos.LeaveRequests),
	}
	if jwtService != nil {
		s.Auth = authService.NewAuthService(repos.Users, repos.Employees, jwtService)
	}
	return s
}
