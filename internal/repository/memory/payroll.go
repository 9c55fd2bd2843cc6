package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	store *store[payroll.Record]
}

func NewPayrollRepository(seed []payroll.Record) payroll.PayrollRepository {
	return &payrollRepositoryImpl{
		store: newStore(seed, func(r payroll.Record) string { return r.ID }, payroll.ErrPayrollRecordNotFound).
			withClone(func(r payroll.Record) payroll.Record {
				r.ProcessedAt = clonePtr(r.ProcessedAt)
				return r
			}),
	}
}

func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	return r.store.list(), nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	return r.store.get(id)
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, newRecord payroll.Record) (payroll.Record, error) {
	if newRecord.ID == "" {
		newRecord.ID = newID()
	}
	return r.store.insert(newRecord, nil)
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, id string, patch payroll.Patch) (payroll.Record, error) {
	return r.store.update(id, patch.Apply, nil)
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
