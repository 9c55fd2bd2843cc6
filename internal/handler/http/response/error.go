package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDepartmentNotFound),
		errors.Is(err, employee.ErrDesignationNotFound):
		BadRequest(w, err.Error(), nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentHasEmployees):
		Conflict(w, "Department still has employees assigned")

	// Designation domain errors
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationNameExists):
		Conflict(w, "Designation name already exists in department")
	case errors.Is(err, designation.ErrDesignationInUse):
		Conflict(w, "Designation is still assigned to employees")
	case errors.Is(err, designation.ErrInvalidSalaryRange),
		errors.Is(err, designation.ErrDepartmentNotFound):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeNameExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Employee already has leave in that period")
	case errors.Is(err, leave.ErrExceedsMaxDays),
		errors.Is(err, leave.ErrEmployeeNotFound):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNothingToProcess):
		Conflict(w, "No pending or draft payroll records for the period")
	case errors.Is(err, payroll.ErrPayslipNotAvailable):
		Conflict(w, "Payslip is only available for processed payroll")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn),
		errors.Is(err, attendance.ErrAlreadyPunchedOut),
		errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidTimeRange),
		errors.Is(err, attendance.ErrEmployeeNotFound):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
