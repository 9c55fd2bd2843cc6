package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_Values(t *testing.T) {
	v := ListParams{
		Search: "kumar",
		Facets: map[string][]string{"status": {"Active", "Probation"}},
		Page:   2,
		Limit:  5,
	}.Values()

	assert.Equal(t, "kumar", v.Get("search"))
	assert.Equal(t, []string{"Active", "Probation"}, v["status"])
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "5", v.Get("limit"))

	assert.Empty(t, ListParams{}.Values(), "zero values are omitted")
}

func TestClient_LoginThenList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@indianports.gov.in", body["email"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"access_token":"tok-123","token_type":"Bearer","user":{"id":"USR-001"}}}`))
	})
	mux.HandleFunc("GET /api/v1/employees", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, []string{"Active", "Probation"}, r.URL.Query()["status"])
		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[{"id":"EMP-001","full_name":"Rajesh Kumar"}],"summary":{"total_count":12,"filtered_count":12,"counts":{"status":{"Active":10}}}},"meta":{"page":1,"limit":1,"total_items":12,"total_pages":12}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL + "/api/v1/")
	ctx := context.Background()

	token, err := c.Login(ctx, "admin@indianports.gov.in", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)

	page, err := c.List(ctx, "/employees", ListParams{Facets: map[string][]string{"status": {"Active", "Probation"}}, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Rajesh Kumar", page.Items[0]["full_name"])
	assert.Equal(t, 12, page.Summary.TotalCount)
	assert.Equal(t, 10, page.Summary.Count("status", "Active"))
	assert.Equal(t, 12, page.Meta.TotalPages)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION_ERROR","message":"Validation failed","details":{"status":"'Retired' is not one of: Active, Inactive, Probation"}}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithToken("t")).List(context.Background(), "/employees", ListParams{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Contains(t, apiErr.Details, "status")
	assert.Contains(t, err.Error(), "status:")
}

func TestClient_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background(), "/employees", ListParams{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "DECODE_ERROR", apiErr.Code)
}
