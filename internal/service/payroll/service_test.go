package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *PayrollServiceImpl {
	t.Helper()
	set, err := fixtures.Load(testNow)
	require.NoError(t, err)
	repos := memory.New(set)
	svc := NewPayrollService(
		repos.Tx,
		repos.Payroll,
		directory.NewLoader(repos.Employees, repos.Departments, repos.Designations),
	).(*PayrollServiceImpl)
	svc.now = func() time.Time { return testNow }
	return svc
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}

func TestListRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       payroll.ListPayrollRequest
		wantTotal int
		wantFirst string
	}{
		{"all records", payroll.ListPayrollRequest{}, 50, "PAY-001"},
		{"draft only", payroll.ListPayrollRequest{Status: []string{"Draft"}}, 16, "PAY-003"},
		{"january", payroll.ListPayrollRequest{Month: []string{"January"}}, 10, "PAY-001"},
		{"january pending", payroll.ListPayrollRequest{Month: []string{"January"}, Status: []string{"Pending"}}, 3, "PAY-011"},
		{"search by employee code", payroll.ListPayrollRequest{Search: "IPA-2024-001"}, 5, "PAY-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListRecords(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, resp.Meta.TotalItems)
			assert.Equal(t, tt.wantTotal, resp.Summary.FilteredCount)
			assert.Equal(t, 50, resp.Summary.TotalCount)
			require.NotEmpty(t, resp.Items)
			assert.Equal(t, tt.wantFirst, resp.Items[0].ID)
		})
	}

	resp, err := svc.ListRecords(ctx, payroll.ListPayrollRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, payroll.DefaultPageSize)
	assert.Equal(t, 17, resp.Summary.Count(payroll.FieldStatus, "Processed"))
	assert.Equal(t, 10, resp.Summary.Count(payroll.FieldMonth, "May"))
	assert.Equal(t, "Rajesh Kumar", resp.Items[0].EmployeeName)
	assertDecimal(t, 28000, resp.Items[0].NetSalary)

	_, err = svc.ListRecords(ctx, payroll.ListPayrollRequest{Status: []string{"Paid"}})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestProcess(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Process(ctx, payroll.ProcessRequest{Month: 1, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "January 2024", resp.Period)
	assert.Equal(t, 6, resp.Processed)
	assertDecimal(t, 242250, resp.TotalNet)

	list, err := svc.ListRecords(ctx, payroll.ListPayrollRequest{Month: []string{"January"}})
	require.NoError(t, err)
	for _, item := range list.Items {
		assert.Equal(t, "Processed", item.Status, item.ID)
		require.NotNil(t, item.ProcessedAt, item.ID)
	}

	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 1, Year: 2024})
	assert.ErrorIs(t, err, payroll.ErrNothingToProcess)

	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 6, Year: 2024})
	assert.ErrorIs(t, err, payroll.ErrNothingToProcess)

	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 13, Year: 2024})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestPayslip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	slip, err := svc.Payslip(ctx, "PAY-001")
	require.NoError(t, err)
	assert.Equal(t, "January 2024", slip.Period)
	assert.Equal(t, "Rajesh Kumar", slip.EmployeeName)
	assert.Equal(t, "Operations", slip.Department)
	assert.Equal(t, "Port Manager", slip.Designation)
	assertDecimal(t, 30000, slip.GrossSalary)
	assertDecimal(t, 28000, slip.NetSalary)
	assert.Equal(t, testNow.Format(time.RFC3339), slip.GeneratedAt)

	_, err = svc.Payslip(ctx, "PAY-002")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotAvailable)

	_, err = svc.Payslip(ctx, "PAY-404")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestDashboard(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, dash.TotalRecords)
	assert.Equal(t, 17, dash.Processed)
	assert.Equal(t, 17, dash.Pending)
	assert.Equal(t, 16, dash.Draft)
	assertDecimal(t, 700400, dash.TotalProcessedNet)
	assertDecimal(t, 2073750, dash.TotalPayroll)
}
