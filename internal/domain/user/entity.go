package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var Roles = []string{string(RoleAdmin), string(RoleHR), string(RoleManager), string(RoleEmployee)}

type User struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	CreatedAt    time.Time

	// EmployeeID is the employee record matching EmployeeCode. It is
	// resolved at login and not stored.
	EmployeeID string
}

// Patch holds the profile fields a user may change; nil fields are left
// untouched.
type Patch struct {
	Name  *string
	Email *string
}

func (p Patch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

// IsAdmin checks if user has unrestricted access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
