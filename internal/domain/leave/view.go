package leave

const (
	FieldEmployeeName = "employee_name"
	FieldEmployeeCode = "employee_code"
	FieldReason       = "reason"
	FieldStatus       = "status"
	FieldType         = "type"
)

var SearchFields = []string{FieldEmployeeName, FieldEmployeeCode, FieldReason}

var FacetFields = []string{FieldStatus, FieldType}

// RequestView is a leave request joined with the employee and type names.
type RequestView struct {
	LeaveRequest
	EmployeeName string
	EmployeeCode string
	TypeName     string
}

func (v RequestView) RecordID() string { return v.ID }

func (v RequestView) Field(name string) (string, bool) {
	switch name {
	case FieldEmployeeName:
		return v.EmployeeName, v.EmployeeName != ""
	case FieldEmployeeCode:
		return v.EmployeeCode, v.EmployeeCode != ""
	case FieldReason:
		return v.Reason, true
	case FieldStatus:
		return string(v.Status), true
	case FieldType:
		return v.TypeName, v.TypeName != ""
	}
	return "", false
}
