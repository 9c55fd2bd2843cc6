package user

type Permission string

const (
	// Employees, departments and designations
	PermissionEmployeesRead  Permission = "employees.read"
	PermissionEmployeesWrite Permission = "employees.write"

	// Attendance
	PermissionAttendanceRead  Permission = "attendance.read"
	PermissionAttendanceWrite Permission = "attendance.write"

	// Payroll
	PermissionPayrollRead  Permission = "payroll.read"
	PermissionPayrollWrite Permission = "payroll.write"

	// Leave
	PermissionLeaveRead    Permission = "leave.read"
	PermissionLeaveWrite   Permission = "leave.write"
	PermissionLeaveApprove Permission = "leave.approve"

	// PermissionAll grants every permission
	PermissionAll Permission = "all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAll,
	},
	RoleHR: {
		PermissionEmployeesRead,
		PermissionEmployeesWrite,
		PermissionAttendanceRead,
		PermissionPayrollRead,
		PermissionLeaveRead,
		PermissionLeaveWrite,
		PermissionLeaveApprove,
	},
	RoleManager: {
		PermissionEmployeesRead,
		PermissionAttendanceRead,
		PermissionAttendanceWrite,
		PermissionLeaveRead,
		PermissionLeaveApprove,
	},
	RoleEmployee: {
		PermissionAttendanceWrite,
		PermissionLeaveWrite,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission || p == PermissionAll {
			return true
		}
	}

	return false
}

// PermissionsFor lists the permissions of role as strings.
func PermissionsFor(role Role) []string {
	perms := RolePermissions[role]
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
