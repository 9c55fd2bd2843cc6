package directory

import (
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesNames(t *testing.T) {
	d := New(
		[]employee.Employee{
			{ID: "e1", FirstName: "Rajesh", LastName: "Kumar", DepartmentID: "d1", DesignationID: "g1"},
			{ID: "e2", FirstName: "Ravi", DepartmentID: "d404", DesignationID: "g1"},
		},
		[]department.Department{{ID: "d1", Name: "Operations"}},
		[]designation.Designation{{ID: "g1", Name: "Port Manager"}},
	)

	v, ok := d.Employee("e1")
	require.True(t, ok)
	assert.Equal(t, "Operations", v.DepartmentName)
	assert.Equal(t, "Port Manager", v.DesignationTitle)

	v, ok = d.Employee("e2")
	require.True(t, ok)
	assert.Empty(t, v.DepartmentName)
	_, present := v.Field(employee.FieldDepartment)
	assert.False(t, present, "an unknown department leaves the field absent")

	assert.Equal(t, map[string]int{"d1": 1, "d404": 1}, d.Headcount())
	assert.Equal(t, map[string]int{"g1": 2}, d.DesignationHeadcount())
}
