package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, newRecord Record) (Record, error)
	Update(ctx context.Context, id string, patch Patch) (Record, error)
	// Replace stores record as the one record of its employee and day.
	Replace(ctx context.Context, record Record) (Record, error)
	Delete(ctx context.Context, id string) error
}
