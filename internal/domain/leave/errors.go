package leave

import "errors"

var (
	ErrLeaveTypeNotFound            = errors.New("leave type not found")
	ErrLeaveTypeNameExists          = errors.New("leave type name already exists")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrExceedsMaxDays               = errors.New("leave request exceeds the maximum days for its type")
	ErrOverlappingRequest           = errors.New("employee already has leave in that period")
	ErrEmployeeNotFound             = errors.New("employee does not exist")
)
