package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const payrollColumns = `id, employee_id, month, year, basic_salary, allowances, deductions, status, processed_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayroll(row scanner) (payroll.Record, error) {
	var r payroll.Record
	var month int
	err := row.Scan(
		&r.ID, &r.EmployeeID, &month, &r.Year,
		&r.BasicSalary, &r.Allowances, &r.Deductions, &r.Status, &r.ProcessedAt,
	)
	r.Month = time.Month(month)
	return r, noRows(err, payroll.ErrPayrollRecordNotFound)
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + ` FROM payroll_records ORDER BY id`
	return queryAll(ctx, q, query, scanPayroll)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`
	return scanPayroll(q.QueryRow(ctx, query, id))
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)
	if rec.ID == "" {
		rec.ID = newID()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, year, basic_salary, allowances, deductions, status, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, int(rec.Month), rec.Year,
		rec.BasicSalary, rec.Allowances, rec.Deductions, string(rec.Status), rec.ProcessedAt,
	)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to insert payroll record: %w", err)
	}
	return rec, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, id string, patch payroll.Patch) (payroll.Record, error) {
	set := map[string]any{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.ProcessedAt != nil {
		set["processed_at"] = *patch.ProcessedAt
	}
	if patch.Allowances != nil {
		set["allowances"] = *patch.Allowances
	}
	if patch.Deductions != nil {
		set["deductions"] = *patch.Deductions
	}
	return updateReturning(ctx, GetQuerier(ctx, r.db), "payroll_records", payrollColumns, id, set, scanPayroll)
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "payroll_records", id, payroll.ErrPayrollRecordNotFound)
}
