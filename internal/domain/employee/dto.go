package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 12

type CreateEmployeeRequest struct {
	EmployeeCode     string            `json:"employee_code" validate:"required"`
	FirstName        string            `json:"first_name" validate:"required,max=100"`
	LastName         string            `json:"last_name" validate:"max=100"`
	Email            string            `json:"email" validate:"required,email"`
	Phone            string            `json:"phone"`
	DepartmentID     string            `json:"department_id" validate:"required"`
	DesignationID    string            `json:"designation_id" validate:"required"`
	Classification   string            `json:"classification" validate:"required,oneof=Executive Non-Executive Contract Trainee"`
	EmploymentType   string            `json:"employment_type" validate:"omitempty,oneof=Regular Outsourced Contractual Intern"`
	Status           string            `json:"status" validate:"omitempty,oneof=Active Inactive Probation"`
	DateOfJoining    string            `json:"date_of_joining" validate:"required"`
	DateOfBirth      *string           `json:"date_of_birth,omitempty"`
	BasicSalary      decimal.Decimal   `json:"basic_salary"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.ValidateStruct(r)

	if r.EmployeeCode != "" && !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code must look like IPA-2024-001")
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "invalid phone number format")
	}
	if r.BasicSalary.IsNegative() {
		errs.Add("basic_salary", "basic_salary must be non-negative")
	}
	validateDates(&errs, &r.DateOfJoining, r.DateOfBirth)

	return errs.Err()
}

// ToEntity converts a validated request.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	e := Employee{
		EmployeeCode:     strings.TrimSpace(r.EmployeeCode),
		FirstName:        strings.TrimSpace(r.FirstName),
		LastName:         strings.TrimSpace(r.LastName),
		Email:            strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:            r.Phone,
		DepartmentID:     r.DepartmentID,
		DesignationID:    r.DesignationID,
		Classification:   Classification(r.Classification),
		EmploymentType:   EmploymentType(r.EmploymentType),
		Status:           Status(r.Status),
		BasicSalary:      r.BasicSalary,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
	}
	if e.EmploymentType == "" {
		e.EmploymentType = EmploymentTypeRegular
	}
	if e.Status == "" {
		e.Status = StatusProbation
	}
	e.DateOfJoining, _ = validator.IsValidDate(r.DateOfJoining)
	if r.DateOfBirth != nil {
		dob, _ := validator.IsValidDate(*r.DateOfBirth)
		e.DateOfBirth = &dob
	}
	return e
}

type UpdateEmployeeRequest struct {
	ID               string            `json:"-"`
	EmployeeCode     *string           `json:"employee_code,omitempty"`
	FirstName        *string           `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName         *string           `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email            *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string           `json:"phone,omitempty"`
	DepartmentID     *string           `json:"department_id,omitempty"`
	DesignationID    *string           `json:"designation_id,omitempty"`
	Classification   *string           `json:"classification,omitempty" validate:"omitempty,oneof=Executive Non-Executive Contract Trainee"`
	EmploymentType   *string           `json:"employment_type,omitempty" validate:"omitempty,oneof=Regular Outsourced Contractual Intern"`
	Status           *string           `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Probation"`
	DateOfJoining    *string           `json:"date_of_joining,omitempty"`
	DateOfBirth      *string           `json:"date_of_birth,omitempty"`
	BasicSalary      *decimal.Decimal  `json:"basic_salary,omitempty"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.ValidateStruct(r)

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs.Add("employee_code", "employee_code must look like IPA-2024-001")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "invalid phone number format")
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs.Add("department_id", "department_id must not be empty")
	}
	if r.DesignationID != nil && validator.IsEmpty(*r.DesignationID) {
		errs.Add("designation_id", "designation_id must not be empty")
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs.Add("basic_salary", "basic_salary must be non-negative")
	}
	validateDates(&errs, r.DateOfJoining, r.DateOfBirth)

	return errs.Err()
}

// ToPatch converts a validated request.
func (r *UpdateEmployeeRequest) ToPatch() Patch {
	p := Patch{
		EmployeeCode:     r.EmployeeCode,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Phone:            r.Phone,
		DepartmentID:     r.DepartmentID,
		DesignationID:    r.DesignationID,
		BasicSalary:      r.BasicSalary,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
	}
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		p.Email = &email
	}
	if r.Classification != nil {
		c := Classification(*r.Classification)
		p.Classification = &c
	}
	if r.EmploymentType != nil {
		t := EmploymentType(*r.EmploymentType)
		p.EmploymentType = &t
	}
	if r.Status != nil {
		s := Status(*r.Status)
		p.Status = &s
	}
	if r.DateOfJoining != nil {
		d, _ := validator.IsValidDate(*r.DateOfJoining)
		p.DateOfJoining = &d
	}
	if r.DateOfBirth != nil {
		d, _ := validator.IsValidDate(*r.DateOfBirth)
		p.DateOfBirth = &d
	}
	return p
}

func validateDates(errs *validator.ValidationErrors, joining, birth *string) {
	var doj, dob time.Time
	var okJoin, okBirth bool
	if joining != nil && *joining != "" {
		if doj, okJoin = validator.IsValidDate(*joining); !okJoin {
			errs.Add("date_of_joining", "date_of_joining must be YYYY-MM-DD")
		} else if doj.After(time.Now()) {
			errs.Add("date_of_joining", "date_of_joining cannot be in the future")
		}
	}
	if birth != nil && *birth != "" {
		if dob, okBirth = validator.IsValidDate(*birth); !okBirth {
			errs.Add("date_of_birth", "date_of_birth must be YYYY-MM-DD")
		}
	}
	if okJoin && okBirth && !dob.Before(doj) {
		errs.Add("date_of_birth", "date_of_birth must be before date_of_joining")
	}
}

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	EmployeeCode     *string
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	DepartmentID     *string
	DesignationID    *string
	Classification   *Classification
	EmploymentType   *EmploymentType
	Status           *Status
	DateOfJoining    *time.Time
	DateOfBirth      *time.Time
	BasicSalary      *decimal.Decimal
	Address          *string
	EmergencyContact *EmergencyContact
}

// Apply copies the set fields of p onto e.
func (p Patch) Apply(e *Employee) {
	if p.EmployeeCode != nil {
		e.EmployeeCode = *p.EmployeeCode
	}
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
	if p.DesignationID != nil {
		e.DesignationID = *p.DesignationID
	}
	if p.Classification != nil {
		e.Classification = *p.Classification
	}
	if p.EmploymentType != nil {
		e.EmploymentType = *p.EmploymentType
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.DateOfJoining != nil {
		e.DateOfJoining = *p.DateOfJoining
	}
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		e.DateOfBirth = &dob
	}
	if p.BasicSalary != nil {
		e.BasicSalary = *p.BasicSalary
	}
	if p.Address != nil {
		addr := *p.Address
		e.Address = &addr
	}
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		e.EmergencyContact = &ec
	}
}

// ListEmployeesRequest carries the search, facet and page parameters of the
// employee list.
type ListEmployeesRequest struct {
	Search         string
	Status         []string
	Department     []string
	Classification []string
	EmploymentType []string
	Page           int
	Limit          int
}

func (r *ListEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldStatus, r.Status, Statuses)
	validator.CheckOneOf(&errs, FieldClassification, r.Classification, Classifications)
	validator.CheckOneOf(&errs, FieldEmploymentType, r.EmploymentType, EmploymentTypes)
	validator.CheckNotBlank(&errs, FieldDepartment, r.Department)
	return errs.Err()
}

// Query builds the engine query for the request.
func (r *ListEmployeesRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search: r.Search,
		Fields: SearchFields,
		Facets: listquery.Facets{
			FieldStatus:         r.Status,
			FieldDepartment:     r.Department,
			FieldClassification: r.Classification,
			FieldEmploymentType: r.EmploymentType,
		},
		Page:          listquery.Page{Number: r.Page, Size: limit},
		SummaryFacets: FacetFields,
	}
}

type EmployeeResponse struct {
	ID               string            `json:"id"`
	EmployeeCode     string            `json:"employee_code"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	FullName         string            `json:"full_name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	DepartmentID     string            `json:"department_id"`
	DepartmentName   string            `json:"department_name"`
	DesignationID    string            `json:"designation_id"`
	DesignationTitle string            `json:"designation_title"`
	Classification   string            `json:"classification"`
	EmploymentType   string            `json:"employment_type"`
	Status           string            `json:"status"`
	DateOfJoining    string            `json:"date_of_joining"`
	DateOfBirth      *string           `json:"date_of_birth,omitempty"`
	BasicSalary      decimal.Decimal   `json:"basic_salary"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

func NewEmployeeResponse(v View) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               v.ID,
		EmployeeCode:     v.EmployeeCode,
		FirstName:        v.FirstName,
		LastName:         v.LastName,
		FullName:         v.FullName(),
		Email:            v.Email,
		Phone:            v.Phone,
		DepartmentID:     v.DepartmentID,
		DepartmentName:   v.DepartmentName,
		DesignationID:    v.DesignationID,
		DesignationTitle: v.DesignationTitle,
		Classification:   string(v.Classification),
		EmploymentType:   string(v.EmploymentType),
		Status:           string(v.Status),
		DateOfJoining:    v.DateOfJoining.Format(time.DateOnly),
		BasicSalary:      v.BasicSalary,
		Address:          v.Address,
		EmergencyContact: v.EmergencyContact,
	}
	if v.DateOfBirth != nil {
		dob := v.DateOfBirth.Format(time.DateOnly)
		resp.DateOfBirth = &dob
	}
	return resp
}

type ListEmployeeResponse struct {
	Items   []EmployeeResponse `json:"items"`
	Summary listquery.Summary  `json:"summary"`
	Meta    listquery.Meta     `json:"-"`
}

type StatsResponse struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	Probation        int            `json:"probation"`
	Inactive         int            `json:"inactive"`
	ByClassification map[string]int `json:"by_classification"`
	ByDepartment     map[string]int `json:"by_department"`
}
