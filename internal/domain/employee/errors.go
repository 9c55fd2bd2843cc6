package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrEmailExists         = errors.New("email already registered")
	ErrDepartmentNotFound  = errors.New("department does not exist")
	ErrDesignationNotFound = errors.New("designation does not exist")
)
