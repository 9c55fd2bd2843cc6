package designation

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

// Levels lists every designation level as its facet value.
var Levels = func() []string {
	levels := make([]string, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, strconv.Itoa(l))
	}
	return levels
}()

type Designation struct {
	ID           string
	Name         string
	Level        int
	DepartmentID string
	MinSalary    decimal.Decimal
	MaxSalary    decimal.Decimal
	Description  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InRange reports whether salary lies within the designation's band.
func (d Designation) InRange(salary decimal.Decimal) bool {
	return !salary.LessThan(d.MinSalary) && !salary.GreaterThan(d.MaxSalary)
}
