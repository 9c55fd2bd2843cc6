package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrNothingToProcess      = errors.New("no pending or draft payroll records for the period")
	ErrPayslipNotAvailable   = errors.New("payslip is only available for processed payroll")
)
