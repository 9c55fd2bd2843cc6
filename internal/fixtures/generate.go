package fixtures

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const (
	LeaveRequestCount   = 30
	PayrollRecordCount  = 50
	AttendanceDays      = 30
	attendanceEmployees = 3
	seedYear            = 2024
)

var leaveStatuses = []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}

var payrollStatuses = []payroll.Status{payroll.StatusProcessed, payroll.StatusPending, payroll.StatusDraft}

func generateLeaveRequests(employees []employee.Employee, types []leave.LeaveType) []leave.LeaveRequest {
	if len(employees) == 0 || len(types) == 0 {
		return nil
	}
	requests := make([]leave.LeaveRequest, 0, LeaveRequestCount)
	for i := range LeaveRequestCount {
		start := time.Date(seedYear, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC)
		r := leave.LeaveRequest{
			ID:          fmt.Sprintf("LR-%03d", i+1),
			EmployeeID:  employees[i%len(employees)].ID,
			LeaveTypeID: types[i%len(types)].ID,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 2),
			Reason:      fmt.Sprintf("Leave reason for employee %d", i+1),
			Status:      leaveStatuses[i%len(leaveStatuses)],
			AppliedAt:   start.AddDate(0, 0, -1),
		}
		if r.Status != leave.StatusPending {
			decided := r.AppliedAt.Add(6 * time.Hour)
			r.DecidedAt = &decided
		}
		requests = append(requests, r)
	}
	return requests
}

func generatePayroll(employees []employee.Employee) []payroll.Record {
	if len(employees) == 0 {
		return nil
	}
	records := make([]payroll.Record, 0, PayrollRecordCount)
	for i := range PayrollRecordCount {
		r := payroll.Record{
			ID:          fmt.Sprintf("PAY-%03d", i+1),
			EmployeeID:  employees[i%len(employees)].ID,
			Month:       time.Month(i%5 + 1),
			Year:        seedYear,
			BasicSalary: decimal.NewFromInt(int64(25000 + i*500)),
			Allowances:  decimal.NewFromInt(int64(5000 + i*100)),
			Deductions:  decimal.NewFromInt(int64(2000 + i*50)),
			Status:      payrollStatuses[i%len(payrollStatuses)],
		}
		if r.Status == payroll.StatusProcessed {
			at := time.Date(seedYear, time.Month(i%12+1), 15, 0, 0, 0, 0, time.UTC)
			r.ProcessedAt = &at
		}
		records = append(records, r)
	}
	return records
}

// generateAttendance fills the days before now for the first few employees.
// Today is left open so punch-in works against fresh seed data.
func generateAttendance(employees []employee.Employee, now time.Time) []attendance.Record {
	n := min(attendanceEmployees, len(employees))
	today := attendance.Day(now)
	records := make([]attendance.Record, 0, AttendanceDays*n)
	for d := 1; d <= AttendanceDays; d++ {
		day := today.AddDate(0, 0, -d)
		for i, e := range employees[:n] {
			seed := d*len(employees) + i
			in := day.Add(9*time.Hour + time.Duration(seed*7%30)*time.Minute)
			out := day.Add(time.Duration(13+seed%6)*time.Hour + time.Duration(seed*13%60)*time.Minute)
			total, overtime := attendance.Worked(in, out)
			records = append(records, attendance.Record{
				ID:         fmt.Sprintf("ATT-%s-%s", e.ID, day.Format("20060102")),
				EmployeeID: e.ID,
				Date:       day,
				PunchIn:    &in,
				PunchOut:   &out,
				TotalHours: total,
				Overtime:   overtime,
				Status:     attendance.Classify(total),
				Location:   attendance.DefaultLocation,
			})
		}
	}
	return records
}
