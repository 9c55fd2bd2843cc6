package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	tx          repository.Transactor
	payrollRepo payroll.PayrollRepository
	directory   *directory.Loader
	now         func() time.Time
}

func NewPayrollService(
	tx repository.Transactor,
	payrollRepo payroll.PayrollRepository,
	directory *directory.Loader,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:          tx,
		payrollRepo: payrollRepo,
		directory:   directory,
		now:         time.Now,
	}
}

func (s *PayrollServiceImpl) views(ctx context.Context) ([]payroll.View, error) {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	views := make([]payroll.View, len(records))
	for i, r := range records {
		views[i] = payroll.View{Record: r}
		if e, ok := dir.Employee(r.EmployeeID); ok {
			views[i].EmployeeName = e.FullName()
			views[i].EmployeeCode = e.EmployeeCode
			views[i].DepartmentName = e.DepartmentName
			views[i].DesignationTitle = e.DesignationTitle
		}
	}
	return views, nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, req payroll.ListPayrollRequest) (payroll.ListPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	views, err := s.views(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	result, summary := listquery.Run(views, req.Query())

	items := make([]payroll.RecordResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, payroll.NewRecordResponse(v))
	}
	return payroll.ListPayrollResponse{Items: items, Summary: summary, Meta: result.Meta()}, nil
}

// Process implements payroll.PayrollService.
func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessRequest) (payroll.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessResponse{}, err
	}

	month := time.Month(req.Month)
	resp := payroll.ProcessResponse{
		Period:   payroll.Record{Month: month, Year: req.Year}.Period(),
		TotalNet: decimal.Zero,
	}
	processedAt := s.now().UTC()
	status := payroll.StatusProcessed

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		records, err := s.payrollRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list payroll records: %w", err)
		}
		for _, r := range records {
			if r.Month != month || r.Year != req.Year || !r.Processable() {
				continue
			}
			updated, err := s.payrollRepo.Update(ctx, r.ID, payroll.Patch{Status: &status, ProcessedAt: &processedAt})
			if err != nil {
				return fmt.Errorf("failed to process payroll record %s: %w", r.ID, err)
			}
			resp.Processed++
			resp.TotalNet = resp.TotalNet.Add(updated.NetSalary())
		}
		if resp.Processed == 0 {
			return payroll.ErrNothingToProcess
		}
		return nil
	})
	if err != nil {
		return payroll.ProcessResponse{}, err
	}

	slog.Info("Payroll processed", "period", resp.Period, "records", resp.Processed, "total_net", resp.TotalNet.String())
	return resp, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayslipResponse{}, err
		}
		return payroll.PayslipResponse{}, fmt.Errorf("failed to get payroll record by ID: %w", err)
	}
	if record.Status != payroll.StatusProcessed {
		return payroll.PayslipResponse{}, payroll.ErrPayslipNotAvailable
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	v := payroll.View{Record: record}
	if e, ok := dir.Employee(record.EmployeeID); ok {
		v.EmployeeName = e.FullName()
		v.EmployeeCode = e.EmployeeCode
		v.DepartmentName = e.DepartmentName
		v.DesignationTitle = e.DesignationTitle
	}

	return payroll.PayslipResponse{
		RecordResponse: payroll.NewRecordResponse(v),
		Period:         record.Period(),
		Department:     v.DepartmentName,
		Designation:    v.DesignationTitle,
		GrossSalary:    record.GrossSalary(),
		GeneratedAt:    s.now().UTC().Format(time.RFC3339),
	}, nil
}

// Dashboard implements payroll.PayrollService.
func (s *PayrollServiceImpl) Dashboard(ctx context.Context) (payroll.DashboardResponse, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return payroll.DashboardResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	resp := payroll.DashboardResponse{
		TotalRecords:      len(records),
		TotalProcessedNet: decimal.Zero,
		TotalPayroll:      decimal.Zero,
	}
	for _, r := range records {
		net := r.NetSalary()
		resp.TotalPayroll = resp.TotalPayroll.Add(net)
		switch r.Status {
		case payroll.StatusProcessed:
			resp.Processed++
			resp.TotalProcessedNet = resp.TotalProcessedNet.Add(net)
		case payroll.StatusPending:
			resp.Pending++
		case payroll.StatusDraft:
			resp.Draft++
		}
	}
	return resp, nil
}
