package designation

import "context"

type DesignationRepository interface {
	List(ctx context.Context) ([]Designation, error)
	GetByID(ctx context.Context, id string) (Designation, error)
	Create(ctx context.Context, newDesignation Designation) (Designation, error)
	Update(ctx context.Context, id string, patch Patch) (Designation, error)
	Delete(ctx context.Context, id string) error
}
