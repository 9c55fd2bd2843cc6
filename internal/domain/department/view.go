package department

const (
	FieldName        = "name"
	FieldHead        = "head"
	FieldDescription = "description"
	FieldStatus      = "status"
)

var SearchFields = []string{FieldName, FieldHead, FieldDescription}

var FacetFields = []string{FieldStatus}

// View is a department with its derived headcount.
type View struct {
	Department
	EmployeeCount int
}

// Derive attaches headcounts keyed by department id.
func Derive(departments []Department, headcount map[string]int) []View {
	views := make([]View, len(departments))
	for i, d := range departments {
		views[i] = View{Department: d, EmployeeCount: headcount[d.ID]}
	}
	return views
}

func (v View) RecordID() string { return v.ID }

func (v View) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return v.Name, true
	case FieldHead:
		return v.Head, v.Head != ""
	case FieldDescription:
		return v.Description, v.Description != ""
	case FieldStatus:
		return v.Status(), true
	}
	return "", false
}
