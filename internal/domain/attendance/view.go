package attendance

import "time"

const (
	FieldEmployeeName = "employee_name"
	FieldEmployeeCode = "employee_code"
	FieldEmployee     = "employee"
	FieldDate         = "date"
	FieldStatus       = "status"
	FieldLocation     = "location"
)

var SearchFields = []string{FieldEmployeeName, FieldEmployeeCode}

var FacetFields = []string{FieldStatus, FieldDate, FieldEmployee}

// View is an attendance record joined with its employee.
type View struct {
	Record
	EmployeeName string
	EmployeeCode string
}

func (v View) RecordID() string { return v.ID }

func (v View) Field(name string) (string, bool) {
	switch name {
	case FieldEmployeeName:
		return v.EmployeeName, v.EmployeeName != ""
	case FieldEmployeeCode:
		return v.EmployeeCode, v.EmployeeCode != ""
	case FieldEmployee:
		return v.EmployeeID, true
	case FieldDate:
		return v.Date.Format(time.DateOnly), true
	case FieldStatus:
		return string(v.Status), true
	case FieldLocation:
		return v.Location, v.Location != ""
	}
	return "", false
}
