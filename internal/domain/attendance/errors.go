package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyPunchedIn   = errors.New("employee already punched in today")
	ErrNotPunchedIn       = errors.New("employee has not punched in today")
	ErrAlreadyPunchedOut  = errors.New("employee already punched out today")
	ErrInvalidTimeRange   = errors.New("punch_out must be after punch_in")
	ErrEmployeeNotFound   = errors.New("employee does not exist")
)
