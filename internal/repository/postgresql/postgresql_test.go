package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)

// setupRepos migrates and seeds the database named by TEST_DATABASE_URL.
func setupRepos(t *testing.T) repository.Repositories {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	_, err := database.Migrate(dsn)
	require.NoError(t, err)

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `TRUNCATE attendance_records, payroll_records, leave_requests, leave_types, users, employees, designations, departments`)
	require.NoError(t, err)

	set, err := fixtures.Load(testNow)
	require.NoError(t, err)
	seeded, err := postgresql.Seed(ctx, db, set)
	require.NoError(t, err)
	require.True(t, seeded)

	again, err := postgresql.Seed(ctx, db, set)
	require.NoError(t, err)
	assert.False(t, again, "seeding a populated database is a no-op")

	return postgresql.New(db)
}

func TestSeededCounts(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	employees, err := repos.Employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 12)
	assert.Equal(t, "EMP-001", employees[0].ID)
	require.NotNil(t, employees[0].EmergencyContact)
	assert.Equal(t, "Priya Kumar", employees[0].EmergencyContact.Name)

	records, err := repos.Payroll.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, fixtures.PayrollRecordCount)
	assert.Equal(t, time.January, records[0].Month)
	assert.Equal(t, "28000", records[0].NetSalary().String())

	u, err := repos.Users.GetByEmail(ctx, " Admin@IndianPorts.gov.in ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)
}

func TestEmployeeConstraints(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	existing, err := repos.Employees.GetByID(ctx, "EMP-002")
	require.NoError(t, err)

	dup := existing
	dup.ID = ""
	dup.EmployeeCode = "IPA-2024-099"
	_, err = repos.Employees.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	dup.Email = "new.person@indianports.gov.in"
	dup.DepartmentID = "DEP-404"
	_, err = repos.Employees.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)

	phone := "+91-9000000000"
	updated, err := repos.Employees.Update(ctx, "EMP-002", employee.Patch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, existing.Email, updated.Email)

	_, err = repos.Employees.Update(ctx, "EMP-404", employee.Patch{Phone: &phone})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, repos.Employees.Delete(ctx, "EMP-404"), employee.ErrEmployeeNotFound)
}

func TestDepartmentNameUnique(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	_, err := repos.Departments.Create(ctx, department.Department{Name: "operations", IsActive: true})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	created, err := repos.Departments.Create(ctx, department.Department{Name: "Hydrography", IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestTransactorRollsBack(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	status := payroll.StatusProcessed
	err := repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repos.Payroll.Update(ctx, "PAY-002", payroll.Patch{Status: &status}); err != nil {
			return err
		}
		return payroll.ErrNothingToProcess
	})
	require.ErrorIs(t, err, payroll.ErrNothingToProcess)

	rec, err := repos.Payroll.GetByID(ctx, "PAY-002")
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPending, rec.Status)
}

func TestAttendanceOnePerDay(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	in := testNow
	rec := attendance.Record{EmployeeID: "EMP-004", Date: attendance.Day(testNow), PunchIn: &in, Status: attendance.StatusPresent}
	_, err := repos.Attendance.Create(ctx, rec)
	require.NoError(t, err)

	_, err = repos.Attendance.Create(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestAttendanceReplace(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	in := testNow
	day := attendance.Day(testNow)
	first, err := repos.Attendance.Create(ctx, attendance.Record{EmployeeID: "EMP-005", Date: day, PunchIn: &in, Status: attendance.StatusPresent})
	require.NoError(t, err)

	replaced, err := repos.Attendance.Replace(ctx, attendance.Record{EmployeeID: "EMP-005", Date: day, Status: attendance.StatusLate, Manual: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replaced.ID)
	assert.Equal(t, attendance.StatusLate, replaced.Status)
	assert.Nil(t, replaced.PunchIn)
	assert.True(t, replaced.Manual)
}

func TestLeaveDecideOnlyWhilePending(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	approved := leave.StatusApproved
	decidedAt := testNow
	decided, err := repos.LeaveRequests.Decide(ctx, "LR-001", leave.Patch{Status: &approved, DecidedAt: &decidedAt})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)

	rejected := leave.StatusRejected
	_, err = repos.LeaveRequests.Decide(ctx, "LR-001", leave.Patch{Status: &rejected, DecidedAt: &decidedAt})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = repos.LeaveRequests.Decide(ctx, "LR-999", leave.Patch{Status: &rejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestUserUpdate(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	name := "Priya Nair"
	updated, err := repos.Users.Update(ctx, "USR-002", user.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", updated.Name)

	taken := "admin@indianports.gov.in"
	_, err = repos.Users.Update(ctx, "USR-002", user.Patch{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}
