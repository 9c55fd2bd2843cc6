package department

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

const DefaultPageSize = 15

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Head        string `json:"head" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	if r.Name != "" && validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	return errs.Err()
}

func (r *CreateDepartmentRequest) ToEntity() Department {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Department{
		Name:        strings.TrimSpace(r.Name),
		Head:        strings.TrimSpace(r.Head),
		Description: strings.TrimSpace(r.Description),
		IsActive:    active,
	}
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Head        *string `json:"head,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	return errs.Err()
}

func (r *UpdateDepartmentRequest) ToPatch() Patch {
	p := Patch{Head: r.Head, Description: r.Description, IsActive: r.IsActive}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	return p
}

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Head        *string
	Description *string
	IsActive    *bool
}

func (p Patch) Apply(d *Department) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Head != nil {
		d.Head = *p.Head
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
}

type ListDepartmentsRequest struct {
	Search string
	Status []string
	Page   int
	Limit  int
}

func (r *ListDepartmentsRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldStatus, r.Status, Statuses)
	return errs.Err()
}

func (r *ListDepartmentsRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search:        r.Search,
		Fields:        SearchFields,
		Facets:        listquery.Facets{FieldStatus: r.Status},
		Page:          listquery.Page{Number: r.Page, Size: limit},
		SummaryFacets: FacetFields,
	}
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Head          string `json:"head"`
	Description   string `json:"description"`
	IsActive      bool   `json:"is_active"`
	Status        string `json:"status"`
	EmployeeCount int    `json:"employee_count"`
}

func NewDepartmentResponse(v View) DepartmentResponse {
	return DepartmentResponse{
		ID:            v.ID,
		Name:          v.Name,
		Head:          v.Head,
		Description:   v.Description,
		IsActive:      v.IsActive,
		Status:        v.Status(),
		EmployeeCount: v.EmployeeCount,
	}
}

type ListDepartmentResponse struct {
	Items   []DepartmentResponse `json:"items"`
	Summary listquery.Summary    `json:"summary"`
	Meta    listquery.Meta       `json:"-"`
}

type StatsResponse struct {
	TotalDepartments     int     `json:"total_departments"`
	ActiveDepartments    int     `json:"active_departments"`
	TotalEmployees       int     `json:"total_employees"`
	AveragePerDepartment float64 `json:"average_per_department"`
}
