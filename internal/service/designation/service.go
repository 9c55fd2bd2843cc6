package designation

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

type DesignationServiceImpl struct {
	designationRepo designation.DesignationRepository
	departmentRepo  department.DepartmentRepository
	directory       *directory.Loader
}

func NewDesignationService(
	designationRepo designation.DesignationRepository,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) designation.DesignationService {
	return &DesignationServiceImpl{
		designationRepo: designationRepo,
		departmentRepo:  departmentRepo,
		directory:       directory.NewLoader(employeeRepo, departmentRepo, designationRepo),
	}
}

func (s *DesignationServiceImpl) views(dir *directory.Directory) []designation.View {
	counts := dir.DesignationHeadcount()
	views := make([]designation.View, len(dir.Designations))
	for i, d := range dir.Designations {
		views[i] = designation.View{Designation: d, EmployeeCount: counts[d.ID]}
		views[i].DepartmentName, _ = dir.DepartmentName(d.DepartmentID)
	}
	return views
}

// ListDesignations implements designation.DesignationService.
func (s *DesignationServiceImpl) ListDesignations(ctx context.Context, req designation.ListDesignationsRequest) (designation.ListDesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.ListDesignationResponse{}, err
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return designation.ListDesignationResponse{}, err
	}

	result, summary := listquery.Run(s.views(dir), req.Query())

	items := make([]designation.DesignationResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, designation.NewDesignationResponse(v))
	}
	return designation.ListDesignationResponse{Items: items, Summary: summary, Meta: result.Meta()}, nil
}

// GetDesignation implements designation.DesignationService.
func (s *DesignationServiceImpl) GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error) {
	if _, err := s.designationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, designation.ErrDesignationNotFound) {
			return designation.DesignationResponse{}, err
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to get designation: %w", err)
	}
	return s.respond(ctx, id)
}

// CreateDesignation implements designation.DesignationService.
func (s *DesignationServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, designation.ErrDesignationNameExists) {
			return designation.DesignationResponse{}, err
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to create designation: %w", err)
	}

	slog.Info("Designation created", "designation_id", created.ID, "name", created.Name)
	return s.respond(ctx, created.ID)
}

// UpdateDesignation implements designation.DesignationService.
func (s *DesignationServiceImpl) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	current, err := s.designationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, designation.ErrDesignationNotFound) {
			return designation.DesignationResponse{}, err
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to get designation: %w", err)
	}

	patch := req.ToPatch()
	merged := current
	patch.Apply(&merged)
	if merged.MinSalary.GreaterThan(merged.MaxSalary) {
		return designation.DesignationResponse{}, designation.ErrInvalidSalaryRange
	}
	if patch.DepartmentID != nil {
		if err := s.checkDepartment(ctx, *patch.DepartmentID); err != nil {
			return designation.DesignationResponse{}, err
		}
	}

	if _, err := s.designationRepo.Update(ctx, req.ID, patch); err != nil {
		if errors.Is(err, designation.ErrDesignationNotFound) || errors.Is(err, designation.ErrDesignationNameExists) {
			return designation.DesignationResponse{}, err
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to update designation: %w", err)
	}
	return s.respond(ctx, req.ID)
}

// DeleteDesignation implements designation.DesignationService.
func (s *DesignationServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := dir.Designation(id); !ok {
		return designation.ErrDesignationNotFound
	}
	if dir.DesignationHeadcount()[id] > 0 {
		return designation.ErrDesignationInUse
	}

	if err := s.designationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	slog.Info("Designation deleted", "designation_id", id)
	return nil
}

func (s *DesignationServiceImpl) checkDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return designation.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	return nil
}

func (s *DesignationServiceImpl) respond(ctx context.Context, id string) (designation.DesignationResponse, error) {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	for _, v := range s.views(dir) {
		if v.ID == id {
			return designation.NewDesignationResponse(v), nil
		}
	}
	return designation.DesignationResponse{}, designation.ErrDesignationNotFound
}
