package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const departmentColumns = `id, name, head, description, is_active, created_at, updated_at`

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row scanner) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.Name, &d.Head, &d.Description, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	return d, noRows(err, department.ErrDepartmentNotFound)
}

func departmentError(err error) error {
	if _, ok := constraintViolation(err, codeUniqueViolation); ok {
		return department.ErrDepartmentNameExists
	}
	if _, ok := constraintViolation(err, codeForeignKeyViolation); ok {
		return department.ErrDepartmentHasEmployees
	}
	return err
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY created_at, id`
	return queryAll(ctx, q, query, scanDepartment)
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	return scanDepartment(q.QueryRow(ctx, query, id))
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	if newDepartment.ID == "" {
		newDepartment.ID = newID()
	}

	query := `
		INSERT INTO departments (id, name, head, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		newDepartment.ID, newDepartment.Name, newDepartment.Head, newDepartment.Description, newDepartment.IsActive,
	).Scan(&newDepartment.CreatedAt, &newDepartment.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to insert department: %w", departmentError(err))
	}
	return newDepartment, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, patch department.Patch) (department.Department, error) {
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Head != nil {
		set["head"] = *patch.Head
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

	d, err := updateReturning(ctx, GetQuerier(ctx, r.db), "departments", departmentColumns, id, set, scanDepartment)
	if err != nil {
		return department.Department{}, departmentError(err)
	}
	return d, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	return departmentError(deleteByID(ctx, GetQuerier(ctx, r.db), "departments", id, department.ErrDepartmentNotFound))
}
