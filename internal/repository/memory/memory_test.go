package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "e1", EmployeeCode: "IPA-2024-001", FirstName: "Rajesh", LastName: "Kumar", Email: "rajesh@example.com", Status: employee.StatusActive},
		{ID: "e2", EmployeeCode: "IPA-2024-002", FirstName: "Sunita", LastName: "Sharma", Email: "sunita@example.com", Status: employee.StatusActive},
	}
}

func TestEmployeeRepository_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(seedEmployees())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	list[0].FirstName = "Changed"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2)
	assert.Equal(t, "Rajesh", again[0].FirstName)
}

func TestEmployeeRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(seedEmployees())

	created, err := repo.Create(ctx, employee.Employee{EmployeeCode: "IPA-2024-003", Email: "new@example.com"})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.False(t, created.CreatedAt.IsZero())

	list, _ := repo.List(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, created.ID, list[2].ID, "insertion order is kept")
}

func TestEmployeeRepository_CreateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(seedEmployees())

	_, err := repo.Create(ctx, employee.Employee{EmployeeCode: "ipa-2024-001", Email: "other@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeCode: "IPA-2024-009", Email: "SUNITA@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(seedEmployees())

	status := employee.StatusInactive
	email := "rajesh@example.com"
	updated, err := repo.Update(ctx, "e1", employee.Patch{Status: &status, Email: &email})
	require.NoError(t, err, "keeping its own email is not a conflict")
	assert.Equal(t, employee.StatusInactive, updated.Status)

	taken := "sunita@example.com"
	_, err = repo.Update(ctx, "e1", employee.Patch{Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "rajesh@example.com", got.Email, "a rejected update leaves the record unchanged")

	_, err = repo.Update(ctx, "missing", employee.Patch{Status: &status})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(seedEmployees())

	require.NoError(t, repo.Delete(ctx, "e1"))
	_, err := repo.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "e1"), employee.ErrEmployeeNotFound)
}

func TestDepartmentRepository_NameUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewDepartmentRepository([]department.Department{{ID: "d1", Name: "Operations"}})

	_, err := repo.Create(ctx, department.Department{Name: "operations"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDesignationRepository_NameUniquePerDepartment(t *testing.T) {
	ctx := context.Background()
	repo := NewDesignationRepository([]designation.Designation{{ID: "g1", Name: "Officer", DepartmentID: "d1"}})

	_, err := repo.Create(ctx, designation.Designation{Name: "Officer", DepartmentID: "d1"})
	assert.ErrorIs(t, err, designation.ErrDesignationNameExists)

	_, err = repo.Create(ctx, designation.Designation{Name: "Officer", DepartmentID: "d2"})
	assert.NoError(t, err)
}

func TestAttendanceRepository_OneRecordPerDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	repo := NewAttendanceRepository(nil)

	_, err := repo.Create(ctx, attendance.Record{EmployeeID: "e1", Date: day})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Record{EmployeeID: "e1", Date: day})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
	_, err = repo.Create(ctx, attendance.Record{EmployeeID: "e1", Date: day.AddDate(0, 0, 1)})
	assert.NoError(t, err)
}

func TestEmployeeRepository_PointerFieldsAreNotShared(t *testing.T) {
	ctx := context.Background()
	address := "Port Road 1"
	seed := seedEmployees()
	seed[0].Address = &address
	seed[0].EmergencyContact = &employee.EmergencyContact{Name: "Anita", Phone: "+91 98000 00000"}
	repo := NewEmployeeRepository(seed)

	address = "changed by the seeder"
	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Port Road 1", *got.Address)

	*got.Address = "changed by a reader"
	got.EmergencyContact.Name = "someone else"

	again, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Port Road 1", *again.Address)
	assert.Equal(t, "Anita", again.EmergencyContact.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	*list[0].Address = "changed through a list"
	again, err = repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Port Road 1", *again.Address)
}

func TestLeaveRequestRepository_DecideOnlyWhilePending(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository([]leave.LeaveRequest{
		{ID: "r1", Status: leave.StatusPending},
		{ID: "r2", Status: leave.StatusRejected},
	})
	approved := leave.StatusApproved

	decided, err := repo.Decide(ctx, "r1", leave.Patch{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)

	_, err = repo.Decide(ctx, "r1", leave.Patch{Status: &approved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = repo.Decide(ctx, "r2", leave.Patch{Status: &approved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	r2, err := repo.GetByID(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, r2.Status)

	_, err = repo.Decide(ctx, "r9", leave.Patch{Status: &approved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestAttendanceRepository_ReplaceKeepsOneRecordPerDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	repo := NewAttendanceRepository(nil)

	first, err := repo.Create(ctx, attendance.Record{EmployeeID: "e1", Date: day, Status: attendance.StatusPresent})
	require.NoError(t, err)

	replaced, err := repo.Replace(ctx, attendance.Record{EmployeeID: "e1", Date: day, Status: attendance.StatusLate, Manual: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replaced.ID)
	assert.Equal(t, attendance.StatusLate, replaced.Status)

	added, err := repo.Replace(ctx, attendance.Record{EmployeeID: "e1", Date: day.AddDate(0, 0, 1), Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, added.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, attendance.StatusLate, all[0].Status)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository([]user.User{
		{ID: "u1", Name: "HR Manager", Email: "hr@indianports.gov.in"},
		{ID: "u2", Name: "Admin User", Email: "admin@indianports.gov.in"},
	})

	name := "Priya Nair"
	updated, err := repo.Update(ctx, "u1", user.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", updated.Name)
	assert.Equal(t, "hr@indianports.gov.in", updated.Email)

	taken := "ADMIN@indianports.gov.in"
	_, err = repo.Update(ctx, "u1", user.Patch{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = repo.Update(ctx, "u9", user.Patch{Name: &name})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository([]user.User{{ID: "u1", Email: "admin@indianports.gov.in", Role: user.RoleAdmin}})

	u, err := repo.GetByEmail(ctx, " Admin@IndianPorts.gov.in ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
