package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
)

type departmentRepositoryImpl struct {
	store *store[department.Department]
}

func NewDepartmentRepository(seed []department.Department) department.DepartmentRepository {
	return &departmentRepositoryImpl{
		store: newStore(seed, func(d department.Department) string { return d.ID }, department.ErrDepartmentNotFound),
	}
}

func departmentConflict(existing, d department.Department) error {
	if strings.EqualFold(existing.Name, d.Name) {
		return department.ErrDepartmentNameExists
	}
	return nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	return r.store.list(), nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	return r.store.get(id)
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	if newDepartment.ID == "" {
		newDepartment.ID = newID()
	}
	newDepartment.CreatedAt = now()
	newDepartment.UpdatedAt = newDepartment.CreatedAt
	return r.store.insert(newDepartment, departmentConflict)
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, patch department.Patch) (department.Department, error) {
	return r.store.update(id, func(d *department.Department) {
		patch.Apply(d)
		d.UpdatedAt = now()
	}, departmentConflict)
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
