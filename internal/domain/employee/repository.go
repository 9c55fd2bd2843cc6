package employee

import "context"

type EmployeeRepository interface {
	// List returns a snapshot of all employees in insertion order.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, patch Patch) (Employee, error)
	Delete(ctx context.Context, id string) error
}
