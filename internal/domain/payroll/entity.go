package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusProcessed Status = "Processed"
	StatusPending   Status = "Pending"
	StatusDraft     Status = "Draft"
)

var Statuses = []string{string(StatusProcessed), string(StatusPending), string(StatusDraft)}

// Record is one employee's payroll for a month.
type Record struct {
	ID          string
	EmployeeID  string
	Month       time.Month
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	Status      Status
	ProcessedAt *time.Time
}

// NetSalary is basic plus allowances minus deductions.
func (r Record) NetSalary() decimal.Decimal {
	return r.BasicSalary.Add(r.Allowances).Sub(r.Deductions)
}

// GrossSalary is basic plus allowances.
func (r Record) GrossSalary() decimal.Decimal {
	return r.BasicSalary.Add(r.Allowances)
}

// Processable reports whether Process may move the record to Processed.
func (r Record) Processable() bool {
	return r.Status == StatusPending || r.Status == StatusDraft
}

// Period renders the record's month, e.g. "March 2024".
func (r Record) Period() string {
	return fmt.Sprintf("%s %d", r.Month, r.Year)
}
