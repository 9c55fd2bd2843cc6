package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusHalfDay)}

const (
	StandardHours = 8.0
	HalfDayHours  = 4.0
)

// Record is one employee's attendance for one day.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	PunchIn    *time.Time
	PunchOut   *time.Time
	TotalHours float64
	Overtime   float64
	Status     Status
	Location   string
	Manual     bool
}

// Open reports whether the employee punched in but not out.
func (r Record) Open() bool {
	return r.PunchIn != nil && r.PunchOut == nil
}

// Worked returns the hours between in and out and the overtime beyond a
// standard day, both rounded to one decimal.
func Worked(in, out time.Time) (total, overtime float64) {
	hours := out.Sub(in).Hours()
	if hours < 0 {
		hours = 0
	}
	return round1(hours), round1(math.Max(0, hours-StandardHours))
}

// Classify maps worked hours to a status.
func Classify(hours float64) Status {
	switch {
	case hours >= StandardHours:
		return StatusPresent
	case hours >= HalfDayHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
