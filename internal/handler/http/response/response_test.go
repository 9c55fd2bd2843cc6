package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "name", Message: "name is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrapped not found", fmt.Errorf("failed to get employee: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate code", employee.ErrEmployeeCodeExists, http.StatusConflict, "CONFLICT"},
		{"department in use", department.ErrDepartmentHasEmployees, http.StatusConflict, "CONFLICT"},
		{"leave too long", leave.ErrExceedsMaxDays, http.StatusBadRequest, "BAD_REQUEST"},
		{"already decided", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"payslip", payroll.ErrPayslipNotAvailable, http.StatusConflict, "CONFLICT"},
		{"punched in", attendance.ErrAlreadyPunchedIn, http.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "email", Message: "invalid email format"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"email": "invalid email format"}, body.Error.Details)
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, map[string]any{"items": []string{}}, listquery.Meta{Page: 1, Limit: 10, TotalItems: 0, TotalPages: 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"items":[]},"meta":{"page":1,"limit":10,"total_items":0,"total_pages":1}}`, rec.Body.String())
}
