package designation

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 10

type CreateDesignationRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Level        int             `json:"level" validate:"gte=1,lte=5"`
	DepartmentID string          `json:"department_id" validate:"required"`
	MinSalary    decimal.Decimal `json:"min_salary"`
	MaxSalary    decimal.Decimal `json:"max_salary"`
	Description  string          `json:"description" validate:"max=500"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

func (r *CreateDesignationRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	validateSalaries(&errs, r.MinSalary, r.MaxSalary)
	return errs.Err()
}

func (r *CreateDesignationRequest) ToEntity() Designation {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Designation{
		Name:         strings.TrimSpace(r.Name),
		Level:        r.Level,
		DepartmentID: r.DepartmentID,
		MinSalary:    r.MinSalary,
		MaxSalary:    r.MaxSalary,
		Description:  strings.TrimSpace(r.Description),
		IsActive:     active,
	}
}

type UpdateDesignationRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Level        *int             `json:"level,omitempty" validate:"omitempty,gte=1,lte=5"`
	DepartmentID *string          `json:"department_id,omitempty"`
	MinSalary    *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary    *decimal.Decimal `json:"max_salary,omitempty"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateDesignationRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs.Add("department_id", "department_id must not be empty")
	}
	if r.MinSalary != nil && r.MinSalary.IsNegative() {
		errs.Add("min_salary", "min_salary must be non-negative")
	}
	if r.MaxSalary != nil && r.MaxSalary.IsNegative() {
		errs.Add("max_salary", "max_salary must be non-negative")
	}
	return errs.Err()
}

func (r *UpdateDesignationRequest) ToPatch() Patch {
	p := Patch{
		Level:        r.Level,
		DepartmentID: r.DepartmentID,
		MinSalary:    r.MinSalary,
		MaxSalary:    r.MaxSalary,
		Description:  r.Description,
		IsActive:     r.IsActive,
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	return p
}

func validateSalaries(errs *validator.ValidationErrors, minSalary, maxSalary decimal.Decimal) {
	if minSalary.IsNegative() {
		errs.Add("min_salary", "min_salary must be non-negative")
	}
	if maxSalary.IsNegative() {
		errs.Add("max_salary", "max_salary must be non-negative")
	}
	if minSalary.GreaterThan(maxSalary) {
		errs.Add("max_salary", ErrInvalidSalaryRange.Error())
	}
}

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	Name         *string
	Level        *int
	DepartmentID *string
	MinSalary    *decimal.Decimal
	MaxSalary    *decimal.Decimal
	Description  *string
	IsActive     *bool
}

func (p Patch) Apply(d *Designation) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Level != nil {
		d.Level = *p.Level
	}
	if p.DepartmentID != nil {
		d.DepartmentID = *p.DepartmentID
	}
	if p.MinSalary != nil {
		d.MinSalary = *p.MinSalary
	}
	if p.MaxSalary != nil {
		d.MaxSalary = *p.MaxSalary
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
}

type ListDesignationsRequest struct {
	Search     string
	Level      []string
	Department []string
	Page       int
	Limit      int
}

func (r *ListDesignationsRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldLevel, r.Level, Levels)
	validator.CheckNotBlank(&errs, FieldDepartment, r.Department)
	return errs.Err()
}

func (r *ListDesignationsRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search: r.Search,
		Fields: SearchFields,
		Facets: listquery.Facets{
			FieldLevel:      r.Level,
			FieldDepartment: r.Department,
		},
		Page:          listquery.Page{Number: r.Page, Size: limit},
		SummaryFacets: FacetFields,
	}
}

type DesignationResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Level          int             `json:"level"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	MinSalary      decimal.Decimal `json:"min_salary"`
	MaxSalary      decimal.Decimal `json:"max_salary"`
	Description    string          `json:"description"`
	IsActive       bool            `json:"is_active"`
	EmployeeCount  int             `json:"employee_count"`
}

func NewDesignationResponse(v View) DesignationResponse {
	return DesignationResponse{
		ID:             v.ID,
		Name:           v.Name,
		Level:          v.Level,
		DepartmentID:   v.DepartmentID,
		DepartmentName: v.DepartmentName,
		MinSalary:      v.MinSalary,
		MaxSalary:      v.MaxSalary,
		Description:    v.Description,
		IsActive:       v.IsActive,
		EmployeeCount:  v.EmployeeCount,
	}
}

type ListDesignationResponse struct {
	Items   []DesignationResponse `json:"items"`
	Summary listquery.Summary     `json:"summary"`
	Meta    listquery.Meta        `json:"-"`
}
