package leave

import "time"

type LeaveType struct {
	ID        string
	Name      string
	MaxDays   int
	Color     string
	CreatedAt time.Time
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	Status      Status
	AppliedAt   time.Time
	DecidedAt   *time.Time
}

// Days is the inclusive number of calendar days the request covers.
func (r LeaveRequest) Days() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// Covers reports whether day falls within the request.
func (r LeaveRequest) Covers(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(r.StartDate)) && !d.After(truncateDay(r.EndDate))
}

// InclusiveDays counts calendar days from start to end, both included.
// It returns 0 when end is before start.
func InclusiveDays(start, end time.Time) int {
	s, e := truncateDay(start), truncateDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
