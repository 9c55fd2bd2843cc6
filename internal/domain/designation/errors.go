package designation

import "errors"

var (
	ErrDesignationNotFound   = errors.New("designation not found")
	ErrDesignationNameExists = errors.New("designation name already exists in department")
	ErrInvalidSalaryRange    = errors.New("min_salary must not exceed max_salary")
	ErrDepartmentNotFound    = errors.New("department does not exist")
	ErrDesignationInUse      = errors.New("designation is still assigned to employees")
)
