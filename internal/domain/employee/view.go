package employee

// Field names an employee list can be searched or faceted on.
const (
	FieldName           = "name"
	FieldEmployeeCode   = "employee_code"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldDepartment     = "department"
	FieldDesignation    = "designation"
	FieldStatus         = "status"
	FieldClassification = "classification"
	FieldEmploymentType = "employment_type"
)

// SearchFields are the fields free-text search looks at.
var SearchFields = []string{FieldName, FieldEmployeeCode, FieldEmail, FieldDepartment}

// FacetFields are the fields list screens offer as filters.
var FacetFields = []string{FieldStatus, FieldDepartment, FieldClassification, FieldEmploymentType}

// View is an employee joined with the names of its department and
// designation, built once per request before querying.
type View struct {
	Employee
	DepartmentName   string
	DesignationTitle string
}

// Lookup resolves ids to display names.
type Lookup func(id string) (string, bool)

// Derive builds the views for employees. Unknown ids resolve to "".
func Derive(employees []Employee, departments, designations Lookup) []View {
	views := make([]View, len(employees))
	for i, e := range employees {
		views[i] = View{Employee: e}
		if departments != nil {
			views[i].DepartmentName, _ = departments(e.DepartmentID)
		}
		if designations != nil {
			views[i].DesignationTitle, _ = designations(e.DesignationID)
		}
	}
	return views
}

func (v View) RecordID() string { return v.ID }

func (v View) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return v.FullName(), true
	case FieldEmployeeCode:
		return v.EmployeeCode, true
	case FieldEmail:
		return v.Email, true
	case FieldPhone:
		return v.Phone, true
	case FieldDepartment:
		return v.DepartmentName, v.DepartmentName != ""
	case FieldDesignation:
		return v.DesignationTitle, v.DesignationTitle != ""
	case FieldStatus:
		return string(v.Status), true
	case FieldClassification:
		return string(v.Classification), true
	case FieldEmploymentType:
		return string(v.EmploymentType), v.EmploymentType != ""
	}
	return "", false
}
