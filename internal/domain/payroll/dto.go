package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 10

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	Status      *Status
	ProcessedAt *time.Time
	Allowances  *decimal.Decimal
	Deductions  *decimal.Decimal
}

func (p Patch) Apply(r *Record) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ProcessedAt != nil {
		at := *p.ProcessedAt
		r.ProcessedAt = &at
	}
	if p.Allowances != nil {
		r.Allowances = *p.Allowances
	}
	if p.Deductions != nil {
		r.Deductions = *p.Deductions
	}
}

type ListPayrollRequest struct {
	Search string
	Status []string
	Month  []string
	Page   int
	Limit  int
}

func (r *ListPayrollRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldStatus, r.Status, Statuses)
	validator.CheckNotBlank(&errs, FieldMonth, r.Month)
	return errs.Err()
}

func (r *ListPayrollRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search: r.Search,
		Fields: SearchFields,
		Facets: listquery.Facets{
			FieldStatus: r.Status,
			FieldMonth:  r.Month,
		},
		Page:          listquery.Page{Number: r.Page, Size: limit},
		SummaryFacets: FacetFields,
	}
}

type ProcessRequest struct {
	Month int `json:"month" validate:"gte=1,lte=12"`
	Year  int `json:"year" validate:"gte=2000,lte=2100"`
}

func (r *ProcessRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	return errs.Err()
}

type ProcessResponse struct {
	Period    string          `json:"period"`
	Processed int             `json:"processed"`
	TotalNet  decimal.Decimal `json:"total_net"`
}

type RecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeCode string          `json:"employee_code"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	ProcessedAt  *string         `json:"processed_at,omitempty"`
}

func NewRecordResponse(v View) RecordResponse {
	resp := RecordResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		EmployeeCode: v.EmployeeCode,
		Month:        v.Month.String(),
		Year:         v.Year,
		BasicSalary:  v.BasicSalary,
		Allowances:   v.Allowances,
		Deductions:   v.Deductions,
		NetSalary:    v.NetSalary(),
		Status:       string(v.Status),
	}
	if v.ProcessedAt != nil {
		at := v.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &at
	}
	return resp
}

type ListPayrollResponse struct {
	Items   []RecordResponse  `json:"items"`
	Summary listquery.Summary `json:"summary"`
	Meta    listquery.Meta    `json:"-"`
}

type PayslipResponse struct {
	RecordResponse
	Period      string          `json:"period"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	GeneratedAt string          `json:"generated_at"`
}

type DashboardResponse struct {
	TotalRecords      int             `json:"total_records"`
	Processed         int             `json:"processed"`
	Pending           int             `json:"pending"`
	Draft             int             `json:"draft"`
	TotalProcessedNet decimal.Decimal `json:"total_processed_net"`
	TotalPayroll      decimal.Decimal `json:"total_payroll"`
}
