package cli

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/service"
)

type column struct {
	header string
	key    string
}

// resource is one list screen: its API path, facets, table columns and the
// in-process query used offline.
type resource struct {
	name    string
	short   string
	path    string
	facets  []string
	columns []column
	offline func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error)
}

var resources = []resource{
	{
		name:   "employees",
		short:  "Employee directory",
		path:   "/employees",
		facets: []string{employee.FieldStatus, employee.FieldDepartment, employee.FieldClassification, employee.FieldEmploymentType},
		columns: []column{
			{"ID", "id"}, {"CODE", "employee_code"}, {"NAME", "full_name"},
			{"DEPARTMENT", "department_name"}, {"DESIGNATION", "designation_title"}, {"STATUS", "status"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Employee.ListEmployees(ctx, employee.ListEmployeesRequest{
				Search:         p.Search,
				Status:         p.Facets[employee.FieldStatus],
				Department:     p.Facets[employee.FieldDepartment],
				Classification: p.Facets[employee.FieldClassification],
				EmploymentType: p.Facets[employee.FieldEmploymentType],
				Page:           p.Page,
				Limit:          p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
	{
		name:   "departments",
		short:  "Departments",
		path:   "/departments",
		facets: []string{department.FieldStatus},
		columns: []column{
			{"ID", "id"}, {"NAME", "name"}, {"HEAD", "head"}, {"EMPLOYEES", "employee_count"}, {"STATUS", "status"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Department.ListDepartments(ctx, department.ListDepartmentsRequest{
				Search: p.Search,
				Status: p.Facets[department.FieldStatus],
				Page:   p.Page,
				Limit:  p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
	{
		name:   "designations",
		short:  "Designations",
		path:   "/designations",
		facets: []string{designation.FieldLevel, designation.FieldDepartment},
		columns: []column{
			{"ID", "id"}, {"NAME", "name"}, {"LEVEL", "level"}, {"DEPARTMENT", "department_name"},
			{"MIN SALARY", "min_salary"}, {"MAX SALARY", "max_salary"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Designation.ListDesignations(ctx, designation.ListDesignationsRequest{
				Search:     p.Search,
				Level:      p.Facets[designation.FieldLevel],
				Department: p.Facets[designation.FieldDepartment],
				Page:       p.Page,
				Limit:      p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
	{
		name:   "leave",
		short:  "Leave requests",
		path:   "/leave/requests",
		facets: []string{leave.FieldStatus, leave.FieldType},
		columns: []column{
			{"ID", "id"}, {"EMPLOYEE", "employee_name"}, {"TYPE", "type"}, {"FROM", "start_date"},
			{"TO", "end_date"}, {"DAYS", "days"}, {"STATUS", "status"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Leave.ListRequests(ctx, leave.ListLeaveRequestsRequest{
				Search: p.Search,
				Status: p.Facets[leave.FieldStatus],
				Type:   p.Facets[leave.FieldType],
				Page:   p.Page,
				Limit:  p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
	{
		name:   "payroll",
		short:  "Payroll records",
		path:   "/payroll",
		facets: []string{payroll.FieldStatus, payroll.FieldMonth},
		columns: []column{
			{"ID", "id"}, {"EMPLOYEE", "employee_name"}, {"MONTH", "month"}, {"YEAR", "year"},
			{"NET", "net_salary"}, {"STATUS", "status"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Payroll.ListRecords(ctx, payroll.ListPayrollRequest{
				Search: p.Search,
				Status: p.Facets[payroll.FieldStatus],
				Month:  p.Facets[payroll.FieldMonth],
				Page:   p.Page,
				Limit:  p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
	{
		name:   "attendance",
		short:  "Attendance records",
		path:   "/attendance",
		facets: []string{attendance.FieldStatus, attendance.FieldDate, attendance.FieldEmployee},
		columns: []column{
			{"ID", "id"}, {"EMPLOYEE", "employee_name"}, {"DATE", "date"}, {"IN", "punch_in"},
			{"OUT", "punch_out"}, {"HOURS", "total_hours"}, {"STATUS", "status"},
		},
		offline: func(ctx context.Context, s service.Services, p apiclient.ListParams) (any, listquery.Meta, error) {
			resp, err := s.Attendance.ListRecords(ctx, attendance.ListAttendanceRequest{
				Search:   p.Search,
				Status:   p.Facets[attendance.FieldStatus],
				Date:     p.Facets[attendance.FieldDate],
				Employee: p.Facets[attendance.FieldEmployee],
				Page:     p.Page,
				Limit:    p.Limit,
			})
			return resp, resp.Meta, err
		},
	},
}
