package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DepartmentID     string
	DesignationID    string
	Classification   Classification
	EmploymentType   EmploymentType
	Status           Status
	DateOfJoining    time.Time
	DateOfBirth      *time.Time
	BasicSalary      decimal.Decimal
	Address          *string
	EmergencyContact *EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName is derived from the name parts and never stored.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type EmergencyContact struct {
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	Relation string `json:"relation" yaml:"relation"`
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusProbation Status = "Probation"
)

var Statuses = []string{string(StatusActive), string(StatusInactive), string(StatusProbation)}

type Classification string

const (
	ClassificationExecutive    Classification = "Executive"
	ClassificationNonExecutive Classification = "Non-Executive"
	ClassificationContract     Classification = "Contract"
	ClassificationTrainee      Classification = "Trainee"
)

var Classifications = []string{
	string(ClassificationExecutive),
	string(ClassificationNonExecutive),
	string(ClassificationContract),
	string(ClassificationTrainee),
}

type EmploymentType string

const (
	EmploymentTypeRegular     EmploymentType = "Regular"
	EmploymentTypeOutsourced  EmploymentType = "Outsourced"
	EmploymentTypeContractual EmploymentType = "Contractual"
	EmploymentTypeIntern      EmploymentType = "Intern"
)

var EmploymentTypes = []string{
	string(EmploymentTypeRegular),
	string(EmploymentTypeOutsourced),
	string(EmploymentTypeContractual),
	string(EmploymentTypeIntern),
}
