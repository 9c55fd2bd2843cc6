package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HRIS_API_URL", "")
	t.Setenv("HRIS_TOKEN", "")
	t.Setenv("FIXTURES_PATH", "")

	cmd := New()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEmployeesList_Offline(t *testing.T) {
	out, err := run(t, "employees", "list", "--search", "rajesh")
	require.NoError(t, err)
	assert.Contains(t, out, "Rajesh Kumar")
	assert.Contains(t, out, "Showing 1-1 of 1 employees (page 1/1, 12 total)")
	assert.Contains(t, out, "status: Active 10, Probation 2")
}

func TestEmployeesList_FacetsAndPaging(t *testing.T) {
	out, err := run(t, "employees", "list", "--facet", "status=Active", "--facet", "status=Probation", "--limit", "5", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 11-12 of 12 employees (page 3/3, 12 total)")
}

func TestEmployeesList_AllPages(t *testing.T) {
	out, err := run(t, "employees", "list", "--limit", "5", "--page", "2", "--all")
	require.NoError(t, err)
	assert.NotContains(t, out, "Showing 1-5 of 12")
	assert.Contains(t, out, "Showing 6-10 of 12 employees (page 2/3, 12 total)")
	assert.Contains(t, out, "Showing 11-12 of 12 employees (page 3/3, 12 total)")
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "payroll", "list", "-f", "month=January", "--json")
	require.NoError(t, err)

	var page struct {
		Items []map[string]any `json:"items"`
		Meta  struct {
			TotalItems int `json:"total_items"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 10, page.Meta.TotalItems)
	for _, item := range page.Items {
		assert.Equal(t, "January", item["month"])
	}
}

func TestList_InvalidFacet(t *testing.T) {
	_, err := run(t, "departments", "list", "--facet", "colour=blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown facet")

	_, err = run(t, "departments", "list", "--facet", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want key=value")
}

func TestList_ValidationErrorFromService(t *testing.T) {
	_, err := run(t, "leave", "list", "--facet", "status=Maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestList_Remote(t *testing.T) {
	var gotAuth string
	var gotStatus []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotStatus = r.URL.Query()["status"]
		assert.Equal(t, "/api/v1/leave/requests", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[{"id":"LR-010","employee_name":"Anita Desai","status":"Pending","days":3}],"summary":{"total_count":30,"filtered_count":1,"counts":{"status":{"Pending":10}}}},"meta":{"page":1,"limit":10,"total_items":1,"total_pages":1}}`))
	}))
	defer srv.Close()

	out, err := run(t, "leave", "list", "--remote", srv.URL+"/api/v1", "--token", "tok", "--facet", "status=Pending")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, []string{"Pending"}, gotStatus)
	assert.Contains(t, out, "LR-010")
	assert.Contains(t, out, "Anita Desai")
	assert.Contains(t, out, "Showing 1-1 of 1 leave (page 1/1, 30 total)")
}

func TestLogin_RequiresRemote(t *testing.T) {
	_, err := run(t, "login", "--email", "a@b.co", "--password", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--remote")
}

func TestParseFacets_CommaSeparated(t *testing.T) {
	got, err := parseFacets([]string{"status=Active, Probation", "department=IT"}, []string{"status", "department"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"status":     {"Active", "Probation"},
		"department": {"IT"},
	}, got)
}
