package department

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) department.DepartmentService {
	t.Helper()
	set, err := fixtures.Load(time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	repos := memory.New(set)
	return NewDepartmentService(repos.Departments, repos.Employees)
}

func TestListDepartments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.ListDepartments(ctx, department.ListDepartmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 11)
	assert.Equal(t, department.DefaultPageSize, resp.Meta.Limit)
	assert.Equal(t, 10, resp.Summary.Count(department.FieldStatus, department.StatusActive))
	assert.Equal(t, 1, resp.Summary.Count(department.FieldStatus, department.StatusInactive))

	ops := resp.Items[0]
	assert.Equal(t, "Operations", ops.Name)
	assert.Equal(t, 3, ops.EmployeeCount)

	resp, err = svc.ListDepartments(ctx, department.ListDepartmentsRequest{Search: "sharma"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2, "head names are searched")
	assert.Equal(t, "Human Resources", resp.Items[0].Name)
	assert.Equal(t, "Legal", resp.Items[1].Name)

	resp, err = svc.ListDepartments(ctx, department.ListDepartmentsRequest{Status: []string{"Inactive"}})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Public Relations", resp.Items[0].Name)
	assert.Equal(t, 11, resp.Summary.TotalCount)

	_, err = svc.ListDepartments(ctx, department.ListDepartmentsRequest{Status: []string{"Archived"}})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCreateDepartment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: " Marine ", Head: "Kiran Rao"})
	require.NoError(t, err)
	assert.Equal(t, "Marine", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.EmployeeCount)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "finance"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateDepartment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inactive := false
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: "DEP-001", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, department.StatusInactive, updated.Status)
	assert.Equal(t, 3, updated.EmployeeCount)

	name := "IT"
	_, err = svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: "DEP-001", Name: &name})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: "DEP-404", IsActive: &inactive})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDeleteDepartment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, "DEP-001"), department.ErrDepartmentHasEmployees)
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, "DEP-404"), department.ErrDepartmentNotFound)

	require.NoError(t, svc.DeleteDepartment(ctx, "DEP-007"))
	_, err := svc.GetDepartment(ctx, "DEP-007")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, stats.TotalDepartments)
	assert.Equal(t, 10, stats.ActiveDepartments)
	assert.Equal(t, 12, stats.TotalEmployees)
	assert.InDelta(t, 1.1, stats.AveragePerDepartment, 0.001)
}
