package department

import "context"

type DepartmentService interface {
	ListDepartments(ctx context.Context, req ListDepartmentsRequest) (ListDepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	// DeleteDepartment refuses while employees are still assigned.
	DeleteDepartment(ctx context.Context, id string) error
	Stats(ctx context.Context) (StatsResponse, error)
}
