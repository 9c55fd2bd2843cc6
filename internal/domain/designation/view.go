package designation

import "strconv"

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldLevel       = "level"
	FieldDepartment  = "department"
	FieldStatus      = "status"
)

var SearchFields = []string{FieldName, FieldDescription}

var FacetFields = []string{FieldLevel, FieldDepartment}

// View is a designation joined with its department name and headcount.
type View struct {
	Designation
	DepartmentName string
	EmployeeCount  int
}

func (v View) RecordID() string { return v.ID }

func (v View) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return v.Name, true
	case FieldDescription:
		return v.Description, v.Description != ""
	case FieldLevel:
		return strconv.Itoa(v.Level), true
	case FieldDepartment:
		return v.DepartmentName, v.DepartmentName != ""
	case FieldStatus:
		if v.IsActive {
			return "Active", true
		}
		return "Inactive", true
	}
	return "", false
}
