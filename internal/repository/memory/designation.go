package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
)

type designationRepositoryImpl struct {
	store *store[designation.Designation]
}

func NewDesignationRepository(seed []designation.Designation) designation.DesignationRepository {
	return &designationRepositoryImpl{
		store: newStore(seed, func(d designation.Designation) string { return d.ID }, designation.ErrDesignationNotFound),
	}
}

// Names are unique within a department.
func designationConflict(existing, d designation.Designation) error {
	if existing.DepartmentID == d.DepartmentID && strings.EqualFold(existing.Name, d.Name) {
		return designation.ErrDesignationNameExists
	}
	return nil
}

func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	return r.store.list(), nil
}

func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	return r.store.get(id)
}

func (r *designationRepositoryImpl) Create(ctx context.Context, newDesignation designation.Designation) (designation.Designation, error) {
	if newDesignation.ID == "" {
		newDesignation.ID = newID()
	}
	newDesignation.CreatedAt = now()
	newDesignation.UpdatedAt = newDesignation.CreatedAt
	return r.store.insert(newDesignation, designationConflict)
}

func (r *designationRepositoryImpl) Update(ctx context.Context, id string, patch designation.Patch) (designation.Designation, error) {
	return r.store.update(id, func(d *designation.Designation) {
		patch.Apply(d)
		d.UpdatedAt = now()
	}, designationConflict)
}

func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
