package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

const (
	DefaultPageSize = 10
	RecentLimit     = 5
)

type CreateLeaveTypeRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	MaxDays int    `json:"max_days" validate:"gte=1,lte=365"`
	Color   string `json:"color" validate:"omitempty,hexcolor"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	return errs.Err()
}

func (r *CreateLeaveTypeRequest) ToEntity() LeaveType {
	return LeaveType{
		Name:    strings.TrimSpace(r.Name),
		MaxDays: r.MaxDays,
		Color:   strings.ToLower(r.Color),
	}
}

type SubmitLeaveRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required"`
	LeaveTypeID string `json:"leave_type_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Reason      string `json:"reason" validate:"required,max=500"`
}

func (r *SubmitLeaveRequest) Validate() error {
	errs := validator.ValidateStruct(r)

	start, okStart := validator.IsValidDate(r.StartDate)
	if r.StartDate != "" && !okStart {
		errs.Add("start_date", "start_date must be YYYY-MM-DD")
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if r.EndDate != "" && !okEnd {
		errs.Add("end_date", "end_date must be YYYY-MM-DD")
	}
	if okStart && okEnd && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

// ToEntity converts a validated request into a pending leave request.
func (r *SubmitLeaveRequest) ToEntity(appliedAt time.Time) LeaveRequest {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return LeaveRequest{
		EmployeeID:  r.EmployeeID,
		LeaveTypeID: r.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      strings.TrimSpace(r.Reason),
		Status:      StatusPending,
		AppliedAt:   appliedAt,
	}
}

// Patch records a decision on a leave request.
type Patch struct {
	Status    *Status
	DecidedAt *time.Time
}

func (p Patch) Apply(r *LeaveRequest) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.DecidedAt != nil {
		at := *p.DecidedAt
		r.DecidedAt = &at
	}
}

type ListLeaveRequestsRequest struct {
	Search string
	Status []string
	Type   []string
	Page   int
	Limit  int
}

func (r *ListLeaveRequestsRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldStatus, r.Status, Statuses)
	validator.CheckNotBlank(&errs, FieldType, r.Type)
	return errs.Err()
}

func (r *ListLeaveRequestsRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search: r.Search,
		Fields: SearchFields,
		Facets: listquery.Facets{
			FieldStatus: r.Status,
			FieldType:   r.Type,
		},
		Page:          listquery.Page{Number: r.Page, Size: limit},
		SummaryFacets: FacetFields,
	}
}

type LeaveTypeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MaxDays int    `json:"max_days"`
	Color   string `json:"color"`
}

func NewLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{ID: t.ID, Name: t.Name, MaxDays: t.MaxDays, Color: t.Color}
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	LeaveTypeID  string  `json:"leave_type_id"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedAt    string  `json:"applied_at"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

func NewLeaveRequestResponse(v RequestView) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		EmployeeCode: v.EmployeeCode,
		LeaveTypeID:  v.LeaveTypeID,
		Type:         v.TypeName,
		StartDate:    v.StartDate.Format(time.DateOnly),
		EndDate:      v.EndDate.Format(time.DateOnly),
		Days:         v.Days(),
		Reason:       v.Reason,
		Status:       string(v.Status),
		AppliedAt:    v.AppliedAt.Format(time.RFC3339),
	}
	if v.DecidedAt != nil {
		at := v.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &at
	}
	return resp
}

type ListLeaveRequestResponse struct {
	Items   []LeaveRequestResponse `json:"items"`
	Summary listquery.Summary      `json:"summary"`
	Meta    listquery.Meta         `json:"-"`
}

type DashboardResponse struct {
	Total    int                    `json:"total"`
	Pending  int                    `json:"pending"`
	Approved int                    `json:"approved"`
	Rejected int                    `json:"rejected"`
	ByType   map[string]int         `json:"by_type"`
	Recent   []LeaveRequestResponse `json:"recent"`
}
