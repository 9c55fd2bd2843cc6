package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees searches, filters and pages employees
	ListEmployees(ctx context.Context, req ListEmployeesRequest) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee with a unique code and email
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id string) error

	// Stats returns the headline counts of the employee screen
	Stats(ctx context.Context) (StatsResponse, error)
}
