// Package fixtures holds the seed data of the in-memory stores.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var seedFS embed.FS

// Set is one consistent snapshot of seed data.
type Set struct {
	Departments   []department.Department
	Designations  []designation.Designation
	Employees     []employee.Employee
	LeaveTypes    []leave.LeaveType
	LeaveRequests []leave.LeaveRequest
	Payroll       []payroll.Record
	Attendance    []attendance.Record
	Users         []user.User
}

// Load reads the embedded seed data. Attendance is generated for the 30 days
// up to now.
func Load(now time.Time) (*Set, error) {
	return LoadFS(seedFS, "data", now)
}

// LoadDir reads seed data from YAML files in dir.
func LoadDir(dir string, now time.Time) (*Set, error) {
	return LoadFS(os.DirFS(dir), ".", now)
}

func LoadFS(fsys fs.FS, dir string, now time.Time) (*Set, error) {
	var (
		rawDepartments  []departmentYAML
		rawDesignations []designationYAML
		rawEmployees    []employeeYAML
		rawLeaveTypes   []leaveTypeYAML
		rawUsers        []userYAML
	)
	files := []struct {
		name string
		into any
	}{
		{"departments.yaml", &rawDepartments},
		{"designations.yaml", &rawDesignations},
		{"employees.yaml", &rawEmployees},
		{"leave_types.yaml", &rawLeaveTypes},
		{"users.yaml", &rawUsers},
	}
	for _, f := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.into); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
	}

	set := &Set{}
	for _, raw := range rawDepartments {
		set.Departments = append(set.Departments, raw.toEntity(now))
	}
	for _, raw := range rawDesignations {
		d, err := raw.toEntity(now)
		if err != nil {
			return nil, fmt.Errorf("designation %s: %w", raw.ID, err)
		}
		set.Designations = append(set.Designations, d)
	}
	for _, raw := range rawEmployees {
		e, err := raw.toEntity(now)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", raw.ID, err)
		}
		set.Employees = append(set.Employees, e)
	}
	for _, raw := range rawLeaveTypes {
		set.LeaveTypes = append(set.LeaveTypes, leave.LeaveType{
			ID:        raw.ID,
			Name:      raw.Name,
			MaxDays:   raw.MaxDays,
			Color:     raw.Color,
			CreatedAt: now,
		})
	}
	for _, raw := range rawUsers {
		u, err := raw.toEntity(now)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", raw.ID, err)
		}
		set.Users = append(set.Users, u)
	}

	set.LeaveRequests = generateLeaveRequests(set.Employees, set.LeaveTypes)
	set.Payroll = generatePayroll(set.Employees)
	set.Attendance = generateAttendance(set.Employees, now)

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks that every reference in the set resolves.
func (s *Set) Validate() error {
	departments := make(map[string]bool, len(s.Departments))
	for _, d := range s.Departments {
		departments[d.ID] = true
	}
	designations := make(map[string]bool, len(s.Designations))
	for _, d := range s.Designations {
		if !departments[d.DepartmentID] {
			return fmt.Errorf("designation %s references unknown department %s", d.ID, d.DepartmentID)
		}
		designations[d.ID] = true
	}
	employees := make(map[string]bool, len(s.Employees))
	for _, e := range s.Employees {
		if !departments[e.DepartmentID] {
			return fmt.Errorf("employee %s references unknown department %s", e.ID, e.DepartmentID)
		}
		if !designations[e.DesignationID] {
			return fmt.Errorf("employee %s references unknown designation %s", e.ID, e.DesignationID)
		}
		employees[e.ID] = true
	}
	types := make(map[string]bool, len(s.LeaveTypes))
	for _, t := range s.LeaveTypes {
		types[t.ID] = true
	}
	for _, r := range s.LeaveRequests {
		if !employees[r.EmployeeID] || !types[r.LeaveTypeID] {
			return fmt.Errorf("leave request %s has a dangling reference", r.ID)
		}
	}
	return nil
}

type departmentYAML struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Head        string `yaml:"head"`
	Description string `yaml:"description"`
	Inactive    bool   `yaml:"inactive"`
}

func (r departmentYAML) toEntity(now time.Time) department.Department {
	return department.Department{
		ID:          r.ID,
		Name:        r.Name,
		Head:        r.Head,
		Description: r.Description,
		IsActive:    !r.Inactive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type designationYAML struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Level        int    `yaml:"level"`
	DepartmentID string `yaml:"department_id"`
	MinSalary    string `yaml:"min_salary"`
	MaxSalary    string `yaml:"max_salary"`
	Description  string `yaml:"description"`
	Inactive     bool   `yaml:"inactive"`
}

func (r designationYAML) toEntity(now time.Time) (designation.Designation, error) {
	minSalary, err := decimal.NewFromString(r.MinSalary)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("min_salary: %w", err)
	}
	maxSalary, err := decimal.NewFromString(r.MaxSalary)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("max_salary: %w", err)
	}
	return designation.Designation{
		ID:           r.ID,
		Name:         r.Name,
		Level:        r.Level,
		DepartmentID: r.DepartmentID,
		MinSalary:    minSalary,
		MaxSalary:    maxSalary,
		Description:  r.Description,
		IsActive:     !r.Inactive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

type employeeYAML struct {
	ID               string                     `yaml:"id"`
	EmployeeCode     string                     `yaml:"employee_code"`
	FirstName        string                     `yaml:"first_name"`
	LastName         string                     `yaml:"last_name"`
	Email            string                     `yaml:"email"`
	Phone            string                     `yaml:"phone"`
	DepartmentID     string                     `yaml:"department_id"`
	DesignationID    string                     `yaml:"designation_id"`
	Classification   string                     `yaml:"classification"`
	EmploymentType   string                     `yaml:"employment_type"`
	Status           string                     `yaml:"status"`
	DateOfJoining    string                     `yaml:"date_of_joining"`
	DateOfBirth      string                     `yaml:"date_of_birth"`
	BasicSalary      string                     `yaml:"basic_salary"`
	Address          string                     `yaml:"address"`
	EmergencyContact *employee.EmergencyContact `yaml:"emergency_contact"`
}

func (r employeeYAML) toEntity(now time.Time) (employee.Employee, error) {
	doj, err := time.Parse(time.DateOnly, r.DateOfJoining)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("date_of_joining: %w", err)
	}
	salary, err := decimal.NewFromString(r.BasicSalary)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("basic_salary: %w", err)
	}
	e := employee.Employee{
		ID:               r.ID,
		EmployeeCode:     r.EmployeeCode,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		DepartmentID:     r.DepartmentID,
		DesignationID:    r.DesignationID,
		Classification:   employee.Classification(r.Classification),
		EmploymentType:   employee.EmploymentType(r.EmploymentType),
		Status:           employee.Status(r.Status),
		DateOfJoining:    doj,
		BasicSalary:      salary,
		EmergencyContact: r.EmergencyContact,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if r.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, r.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("date_of_birth: %w", err)
		}
		e.DateOfBirth = &dob
	}
	if r.Address != "" {
		addr := r.Address
		e.Address = &addr
	}
	return e, nil
}

type leaveTypeYAML struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	MaxDays int    `yaml:"max_days"`
	Color   string `yaml:"color"`
}

type userYAML struct {
	ID           string `yaml:"id"`
	EmployeeCode string `yaml:"employee_code"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	Role         string `yaml:"role"`
	Department   string `yaml:"department"`
}

func (r userYAML) toEntity(now time.Time) (user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return user.User{
		ID:           r.ID,
		EmployeeCode: r.EmployeeCode,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: string(hash),
		Role:         user.Role(r.Role),
		Department:   r.Department,
		CreatedAt:    now,
	}, nil
}
