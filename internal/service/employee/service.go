package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
)

type EmployeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	directory       *directory.Loader
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		directory:       directory.NewLoader(employeeRepo, departmentRepo, designationRepo),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result, summary := listquery.Run(dir.Employees, req.Query())

	items := make([]employee.EmployeeResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, employee.NewEmployeeResponse(v))
	}

	return employee.ListEmployeeResponse{
		Items:   items,
		Summary: summary,
		Meta:    result.Meta(),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.respond(ctx, emp)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkPlacement(ctx, &req.DepartmentID, &req.DesignationID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) || errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode)
	return s.respond(ctx, created)
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkPlacement(ctx, req.DepartmentID, req.DesignationID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req.ID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, employee.ErrEmployeeCodeExists),
			errors.Is(err, employee.ErrEmailExists):
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.respond(ctx, updated)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}

// Stats implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Stats(ctx context.Context) (employee.StatsResponse, error) {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		return employee.StatsResponse{}, err
	}

	summary := listquery.Summarize(dir.Employees, employee.FacetFields)
	return employee.StatsResponse{
		Total:            summary.TotalCount,
		Active:           summary.Count(employee.FieldStatus, string(employee.StatusActive)),
		Probation:        summary.Count(employee.FieldStatus, string(employee.StatusProbation)),
		Inactive:         summary.Count(employee.FieldStatus, string(employee.StatusInactive)),
		ByClassification: summary.Counts[employee.FieldClassification],
		ByDepartment:     summary.Counts[employee.FieldDepartment],
	}, nil
}

// checkPlacement verifies the referenced department and designation exist.
// Nil ids are not checked.
func (s *EmployeeServiceImpl) checkPlacement(ctx context.Context, departmentID, designationID *string) error {
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.ErrDepartmentNotFound
			}
			return fmt.Errorf("failed to get department: %w", err)
		}
	}
	if designationID != nil {
		if _, err := s.designationRepo.GetByID(ctx, *designationID); err != nil {
			if errors.Is(err, designation.ErrDesignationNotFound) {
				return employee.ErrDesignationNotFound
			}
			return fmt.Errorf("failed to get designation: %w", err)
		}
	}
	return nil
}

func (s *EmployeeServiceImpl) respond(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	v := employee.View{Employee: emp}
	if dep, err := s.departmentRepo.GetByID(ctx, emp.DepartmentID); err == nil {
		v.DepartmentName = dep.Name
	}
	if des, err := s.designationRepo.GetByID(ctx, emp.DesignationID); err == nil {
		v.DesignationTitle = des.Name
	}
	return employee.NewEmployeeResponse(v), nil
}
