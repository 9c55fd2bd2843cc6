package payroll

import "strconv"

const (
	FieldEmployeeName = "employee_name"
	FieldEmployeeCode = "employee_code"
	FieldDepartment   = "department"
	FieldStatus       = "status"
	FieldMonth        = "month"
	FieldYear         = "year"
)

var SearchFields = []string{FieldEmployeeName, FieldEmployeeCode}

var FacetFields = []string{FieldStatus, FieldMonth}

// View is a payroll record joined with the employee it pays.
type View struct {
	Record
	EmployeeName     string
	EmployeeCode     string
	DepartmentName   string
	DesignationTitle string
}

func (v View) RecordID() string { return v.ID }

func (v View) Field(name string) (string, bool) {
	switch name {
	case FieldEmployeeName:
		return v.EmployeeName, v.EmployeeName != ""
	case FieldEmployeeCode:
		return v.EmployeeCode, v.EmployeeCode != ""
	case FieldDepartment:
		return v.DepartmentName, v.DepartmentName != ""
	case FieldStatus:
		return string(v.Status), true
	case FieldMonth:
		return v.Month.String(), true
	case FieldYear:
		return strconv.Itoa(v.Year), true
	}
	return "", false
}
