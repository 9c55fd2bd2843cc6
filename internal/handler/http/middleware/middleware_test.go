package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(svc jwt.Service, perm user.Permission) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc)(RequirePermission(perm)(ok)))
}

func request(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthAndPermission(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-secret", "1h")
	require.NoError(t, err)

	admin, _, err := svc.GenerateAccessToken(user.User{ID: "U-1", Email: "admin@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)
	staff, _, err := svc.GenerateAccessToken(user.User{ID: "U-4", Email: "staff@example.com", Role: user.RoleEmployee})
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"admin allowed", admin, http.StatusNoContent},
		{"employee forbidden", staff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			protected(svc, user.PermissionPayrollWrite).ServeHTTP(rec, request(tt.token))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-secret", "1h")
	require.NoError(t, err)
	token, _, err := svc.GenerateAccessToken(user.User{ID: "U-1", Role: user.RoleAdmin})
	require.NoError(t, err)

	svc.RevokeToken(token)

	rec := httptest.NewRecorder()
	protected(svc, user.PermissionEmployeesRead).ServeHTTP(rec, request(token))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
