package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const employeeColumns = `
	id, employee_code, first_name, last_name, email, phone,
	department_id, designation_id, classification, employment_type, status,
	date_of_joining, date_of_birth, basic_salary, address, emergency_contact,
	created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var e employee.Employee
	var contactJSON []byte
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.DepartmentID, &e.DesignationID, &e.Classification, &e.EmploymentType, &e.Status,
		&e.DateOfJoining, &e.DateOfBirth, &e.BasicSalary, &e.Address, &contactJSON,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, noRows(err, employee.ErrEmployeeNotFound)
	}
	if contactJSON != nil {
		var contact employee.EmergencyContact
		if err := json.Unmarshal(contactJSON, &contact); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode emergency contact of %s: %w", e.ID, err)
		}
		e.EmergencyContact = &contact
	}
	return e, nil
}

func employeeError(err error) error {
	if name, ok := constraintViolation(err, codeUniqueViolation); ok {
		if name == "employees_email_key" {
			return employee.ErrEmailExists
		}
		return employee.ErrEmployeeCodeExists
	}
	if name, ok := constraintViolation(err, codeForeignKeyViolation); ok {
		if name == "employees_designation_id_fkey" {
			return employee.ErrDesignationNotFound
		}
		return employee.ErrDepartmentNotFound
	}
	return err
}

func marshalContact(c *employee.EmergencyContact) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`
	return queryAll(ctx, q, query, scanEmployee)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	if e.ID == "" {
		e.ID = newID()
	}
	contactJSON, err := marshalContact(e.EmergencyContact)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to encode emergency contact: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, phone,
			department_id, designation_id, classification, employment_type, status,
			date_of_joining, date_of_birth, basic_salary, address, emergency_contact,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		e.ID, e.EmployeeCode, e.FirstName, e.LastName, e.Email, e.Phone,
		e.DepartmentID, e.DesignationID, string(e.Classification), string(e.EmploymentType), string(e.Status),
		e.DateOfJoining, e.DateOfBirth, e.BasicSalary, e.Address, contactJSON,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", employeeError(err))
	}
	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.Patch) (employee.Employee, error) {
	set := map[string]any{}
	if patch.EmployeeCode != nil {
		set["employee_code"] = *patch.EmployeeCode
	}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.DepartmentID != nil {
		set["department_id"] = *patch.DepartmentID
	}
	if patch.DesignationID != nil {
		set["designation_id"] = *patch.DesignationID
	}
	if patch.Classification != nil {
		set["classification"] = string(*patch.Classification)
	}
	if patch.EmploymentType != nil {
		set["employment_type"] = string(*patch.EmploymentType)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.DateOfJoining != nil {
		set["date_of_joining"] = *patch.DateOfJoining
	}
	if patch.DateOfBirth != nil {
		set["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.BasicSalary != nil {
		set["basic_salary"] = *patch.BasicSalary
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.EmergencyContact != nil {
		contactJSON, err := marshalContact(patch.EmergencyContact)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to encode emergency contact: %w", err)
		}
		set["emergency_contact"] = contactJSON
	}
	if len(set) > 0 {
		set["updated_at"] = now()
	}

	e, err := updateReturning(ctx, GetQuerier(ctx, r.db), "employees", employeeColumns, id, set, scanEmployee)
	if err != nil {
		return employee.Employee{}, employeeError(err)
	}
	return e, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "employees", id, employee.ErrEmployeeNotFound)
}
