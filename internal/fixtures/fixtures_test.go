package fixtures

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)

func TestLoad(t *testing.T) {
	set, err := Load(testNow)
	require.NoError(t, err)

	assert.Len(t, set.Employees, 12)
	assert.Len(t, set.Departments, 11)
	assert.Len(t, set.Designations, 33)
	assert.Len(t, set.LeaveTypes, 4)
	assert.Len(t, set.LeaveRequests, LeaveRequestCount)
	assert.Len(t, set.Payroll, PayrollRecordCount)
	assert.Len(t, set.Attendance, AttendanceDays*attendanceEmployees)
	assert.Len(t, set.Users, 3)

	first := set.Employees[0]
	assert.Equal(t, "IPA-2024-001", first.EmployeeCode)
	assert.Equal(t, "Rajesh Kumar", first.FullName())
	assert.Equal(t, "85000", first.BasicSalary.String())
	require.NotNil(t, first.EmergencyContact)
	assert.Equal(t, "Spouse", first.EmergencyContact.Relation)
}

func TestLoad_UsersHavePasswordHashes(t *testing.T) {
	set, err := Load(testNow)
	require.NoError(t, err)

	for _, u := range set.Users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")), u.Email)
	}
}

func TestGeneratePayroll_NetFollowsComponents(t *testing.T) {
	set, err := Load(testNow)
	require.NoError(t, err)

	for i, r := range set.Payroll {
		assert.Equal(t, int64(28000+i*550), r.NetSalary().IntPart(), r.ID)
		assert.Equal(t, r.Status == payroll.StatusProcessed, r.ProcessedAt != nil, r.ID)
	}
}

func TestGenerateAttendance_LeavesTodayOpen(t *testing.T) {
	set, err := Load(testNow)
	require.NoError(t, err)

	today := attendance.Day(testNow)
	for _, r := range set.Attendance {
		assert.True(t, r.Date.Before(today), r.ID)
		assert.Equal(t, attendance.Classify(r.TotalHours), r.Status, r.ID)
	}
}

func TestValidate_DanglingReference(t *testing.T) {
	set, err := Load(testNow)
	require.NoError(t, err)

	set.Employees[0].DepartmentID = "DEP-404"
	assert.ErrorContains(t, set.Validate(), "unknown department DEP-404")
}
