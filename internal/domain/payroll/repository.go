package payroll

import "context"

type PayrollRepository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, newRecord Record) (Record, error)
	Update(ctx context.Context, id string, patch Patch) (Record, error)
	Delete(ctx context.Context, id string) error
}
