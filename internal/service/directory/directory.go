// Package directory resolves employee, department and designation ids to the
// names list screens show.
package directory

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
)

type Loader struct {
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
}

func NewLoader(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) *Loader {
	return &Loader{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

// Directory is a snapshot of the three stores taken at Load time.
type Directory struct {
	Employees    []employee.View
	Departments  []department.Department
	Designations []designation.Designation

	employeeByID    map[string]employee.View
	departmentByID  map[string]department.Department
	designationByID map[string]designation.Designation
}

func (l *Loader) Load(ctx context.Context) (*Directory, error) {
	departments, err := l.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	designations, err := l.designationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	employees, err := l.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return New(employees, departments, designations), nil
}

func New(employees []employee.Employee, departments []department.Department, designations []designation.Designation) *Directory {
	d := &Directory{
		Departments:     departments,
		Designations:    designations,
		employeeByID:    make(map[string]employee.View, len(employees)),
		departmentByID:  make(map[string]department.Department, len(departments)),
		designationByID: make(map[string]designation.Designation, len(designations)),
	}
	for _, dep := range departments {
		d.departmentByID[dep.ID] = dep
	}
	for _, des := range designations {
		d.designationByID[des.ID] = des
	}
	d.Employees = employee.Derive(employees, d.DepartmentName, d.DesignationTitle)
	for _, v := range d.Employees {
		d.employeeByID[v.ID] = v
	}
	return d
}

func (d *Directory) Employee(id string) (employee.View, bool) {
	v, ok := d.employeeByID[id]
	return v, ok
}

func (d *Directory) Department(id string) (department.Department, bool) {
	dep, ok := d.departmentByID[id]
	return dep, ok
}

func (d *Directory) Designation(id string) (designation.Designation, bool) {
	des, ok := d.designationByID[id]
	return des, ok
}

func (d *Directory) DepartmentName(id string) (string, bool) {
	dep, ok := d.departmentByID[id]
	return dep.Name, ok
}

func (d *Directory) DesignationTitle(id string) (string, bool) {
	des, ok := d.designationByID[id]
	return des.Name, ok
}

// Headcount counts employees per department id.
func (d *Directory) Headcount() map[string]int {
	counts := make(map[string]int, len(d.departmentByID))
	for _, v := range d.Employees {
		counts[v.DepartmentID]++
	}
	return counts
}

// DesignationHeadcount counts employees per designation id.
func (d *Directory) DesignationHeadcount() map[string]int {
	counts := make(map[string]int, len(d.designationByID))
	for _, v := range d.Employees {
		counts[v.DesignationID]++
	}
	return counts
}
