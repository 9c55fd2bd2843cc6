package department

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *DepartmentServiceImpl) headcount(ctx context.Context) (map[string]int, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.DepartmentID]++
	}
	return counts, nil
}

func (s *DepartmentServiceImpl) views(ctx context.Context) ([]department.View, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	counts, err := s.headcount(ctx)
	if err != nil {
		return nil, err
	}
	return department.Derive(departments, counts), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context, req department.ListDepartmentsRequest) (department.ListDepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.ListDepartmentResponse{}, err
	}

	views, err := s.views(ctx)
	if err != nil {
		return department.ListDepartmentResponse{}, err
	}

	result, summary := listquery.Run(views, req.Query())

	items := make([]department.DepartmentResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, department.NewDepartmentResponse(v))
	}
	return department.ListDepartmentResponse{Items: items, Summary: summary, Meta: result.Meta()}, nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dep, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return s.respond(ctx, dep)
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	slog.Info("Department created", "department_id", created.ID, "name", created.Name)
	return department.NewDepartmentResponse(department.View{Department: created}), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, req.ID, req.ToPatch())
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) || errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return s.respond(ctx, updated)
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to get department: %w", err)
	}

	counts, err := s.headcount(ctx)
	if err != nil {
		return err
	}
	if counts[id] > 0 {
		return department.ErrDepartmentHasEmployees
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	slog.Info("Department deleted", "department_id", id)
	return nil
}

// Stats implements department.DepartmentService.
func (s *DepartmentServiceImpl) Stats(ctx context.Context) (department.StatsResponse, error) {
	views, err := s.views(ctx)
	if err != nil {
		return department.StatsResponse{}, err
	}

	summary := listquery.Summarize(views, department.FacetFields)
	var employees int
	for _, v := range views {
		employees += v.EmployeeCount
	}

	stats := department.StatsResponse{
		TotalDepartments:  summary.TotalCount,
		ActiveDepartments: summary.Count(department.FieldStatus, department.StatusActive),
		TotalEmployees:    employees,
	}
	if len(views) > 0 {
		stats.AveragePerDepartment = math.Round(float64(employees)/float64(len(views))*10) / 10
	}
	return stats, nil
}

func (s *DepartmentServiceImpl) respond(ctx context.Context, dep department.Department) (department.DepartmentResponse, error) {
	counts, err := s.headcount(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(department.View{Department: dep, EmployeeCount: counts[dep.ID]}), nil
}
