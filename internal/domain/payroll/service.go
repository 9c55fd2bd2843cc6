package payroll

import "context"

type PayrollService interface {
	ListRecords(ctx context.Context, req ListPayrollRequest) (ListPayrollResponse, error)
	// Process moves every pending or draft record of the period to Processed.
	Process(ctx context.Context, req ProcessRequest) (ProcessResponse, error)
	Payslip(ctx context.Context, id string) (PayslipResponse, error)
	Dashboard(ctx context.Context) (DashboardResponse, error)
}
