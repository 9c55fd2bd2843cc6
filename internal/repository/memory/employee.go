package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *store[employee.Employee]
}

func NewEmployeeRepository(seed []employee.Employee) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		store: newStore(seed, func(e employee.Employee) string { return e.ID }, employee.ErrEmployeeNotFound).
			withClone(cloneEmployee),
	}
}

func cloneEmployee(e employee.Employee) employee.Employee {
	e.DateOfBirth = clonePtr(e.DateOfBirth)
	e.Address = clonePtr(e.Address)
	e.EmergencyContact = clonePtr(e.EmergencyContact)
	return e
}

func employeeConflict(existing, e employee.Employee) error {
	if strings.EqualFold(existing.EmployeeCode, e.EmployeeCode) {
		return employee.ErrEmployeeCodeExists
	}
	if strings.EqualFold(existing.Email, e.Email) {
		return employee.ErrEmailExists
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.store.list(), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.store.get(id)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	newEmployee.CreatedAt = now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	return r.store.insert(newEmployee, employeeConflict)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.Patch) (employee.Employee, error) {
	return r.store.update(id, func(e *employee.Employee) {
		patch.Apply(e)
		e.UpdatedAt = now()
	}, employeeConflict)
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
