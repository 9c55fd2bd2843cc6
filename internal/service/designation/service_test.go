package designation

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) designation.DesignationService {
	t.Helper()
	set, err := fixtures.Load(time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	repos := memory.New(set)
	return NewDesignationService(repos.Designations, repos.Departments, repos.Employees)
}

func TestListDesignations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.ListDesignations(ctx, designation.ListDesignationsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, designation.DefaultPageSize)
	assert.Equal(t, 33, resp.Meta.TotalItems)
	assert.Equal(t, 4, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Summary.Count(designation.FieldLevel, "1"))
	assert.Equal(t, 1, resp.Summary.Count(designation.FieldLevel, "5"))

	resp, err = svc.ListDesignations(ctx, designation.ListDesignationsRequest{
		Level:      []string{"2"},
		Department: []string{"IT"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "System Administrator", resp.Items[0].Name)
	assert.Equal(t, "Database Administrator", resp.Items[1].Name)
	assert.Equal(t, 1, resp.Items[0].EmployeeCount)

	resp, err = svc.ListDesignations(ctx, designation.ListDesignationsRequest{Search: "engineer"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Meta.TotalItems)

	_, err = svc.ListDesignations(ctx, designation.ListDesignationsRequest{Level: []string{"7"}})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCreateDesignation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := designation.CreateDesignationRequest{
		Name:         "Harbour Master",
		Level:        1,
		DepartmentID: "DEP-001",
		MinSalary:    decimal.NewFromInt(90000),
		MaxSalary:    decimal.NewFromInt(120000),
	}
	created, err := svc.CreateDesignation(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Operations", created.DepartmentName)
	assert.True(t, created.IsActive)

	_, err = svc.CreateDesignation(ctx, req)
	assert.ErrorIs(t, err, designation.ErrDesignationNameExists)

	bad := req
	bad.Name = "Deputy Harbour Master"
	bad.MinSalary = decimal.NewFromInt(130000)
	_, err = svc.CreateDesignation(ctx, bad)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "max_salary")

	bad = req
	bad.Name = "Deputy Harbour Master"
	bad.DepartmentID = "DEP-404"
	_, err = svc.CreateDesignation(ctx, bad)
	assert.ErrorIs(t, err, designation.ErrDepartmentNotFound)
}

func TestUpdateDesignation_SalaryRangeAfterMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// DES-001 is 80000..100000.
	tooHigh := decimal.NewFromInt(150000)
	_, err := svc.UpdateDesignation(ctx, designation.UpdateDesignationRequest{ID: "DES-001", MinSalary: &tooHigh})
	assert.ErrorIs(t, err, designation.ErrInvalidSalaryRange)

	higherMax := decimal.NewFromInt(160000)
	updated, err := svc.UpdateDesignation(ctx, designation.UpdateDesignationRequest{ID: "DES-001", MinSalary: &tooHigh, MaxSalary: &higherMax})
	require.NoError(t, err)
	assert.True(t, updated.MinSalary.Equal(tooHigh))
}

func TestDeleteDesignation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteDesignation(ctx, "DES-001"), designation.ErrDesignationInUse)
	assert.ErrorIs(t, svc.DeleteDesignation(ctx, "DES-404"), designation.ErrDesignationNotFound)
	require.NoError(t, svc.DeleteDesignation(ctx, "DES-033"))

	_, err := svc.GetDesignation(ctx, "DES-033")
	assert.ErrorIs(t, err, designation.ErrDesignationNotFound)
}
