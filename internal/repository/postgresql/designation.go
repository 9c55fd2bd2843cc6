package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const designationColumns = `id, name, level, department_id, min_salary, max_salary, description, is_active, created_at, updated_at`

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

func scanDesignation(row scanner) (designation.Designation, error) {
	var d designation.Designation
	err := row.Scan(
		&d.ID, &d.Name, &d.Level, &d.DepartmentID, &d.MinSalary, &d.MaxSalary,
		&d.Description, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, noRows(err, designation.ErrDesignationNotFound)
}

func designationError(err error) error {
	if _, ok := constraintViolation(err, codeUniqueViolation); ok {
		return designation.ErrDesignationNameExists
	}
	if name, ok := constraintViolation(err, codeForeignKeyViolation); ok {
		if name == "employees_designation_id_fkey" {
			return designation.ErrDesignationInUse
		}
		return designation.ErrDepartmentNotFound
	}
	return err
}

// List implements designation.DesignationRepository.
func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + designationColumns + ` FROM designations ORDER BY created_at, id`
	return queryAll(ctx, q, query, scanDesignation)
}

// GetByID implements designation.DesignationRepository.
func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + designationColumns + ` FROM designations WHERE id = $1`
	return scanDesignation(q.QueryRow(ctx, query, id))
}

// Create implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	if d.ID == "" {
		d.ID = newID()
	}

	query := `
		INSERT INTO designations (
			id, name, level, department_id, min_salary, max_salary,
			description, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		d.ID, d.Name, d.Level, d.DepartmentID, d.MinSalary, d.MaxSalary, d.Description, d.IsActive,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("failed to insert designation: %w", designationError(err))
	}
	return d, nil
}

// Update implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Update(ctx context.Context, id string, patch designation.Patch) (designation.Designation, error) {
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Level != nil {
		set["level"] = *patch.Level
	}
	if patch.DepartmentID != nil {
		set["department_id"] = *patch.DepartmentID
	}
	if patch.MinSalary != nil {
		set["min_salary"] = *patch.MinSalary
	}
	if patch.MaxSalary != nil {
		set["max_salary"] = *patch.MaxSalary
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if len(set) > 0 {
		set["updated_at"] = now()
	}

	d, err := updateReturning(ctx, GetQuerier(ctx, r.db), "designations", designationColumns, id, set, scanDesignation)
	if err != nil {
		return designation.Designation{}, designationError(err)
	}
	return d, nil
}

// Delete implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return designationError(deleteByID(ctx, GetQuerier(ctx, r.db), "designations", id, designation.ErrDesignationNotFound))
}
