package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)
	fixed := time.Now()
	svc.now = func() time.Time { return fixed }

	token, expiresAt, err := svc.GenerateAccessToken(user.User{ID: "USR-001", Email: "admin@indianports.gov.in", Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, fixed.Add(15*time.Minute).Unix(), expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "USR-001", Email: "admin@indianports.gov.in", Role: user.RoleAdmin}, claims)
}

func TestGenerateAccessToken_EmployeeClaim(t *testing.T) {
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)

	token, _, err := svc.GenerateAccessToken(user.User{ID: "USR-003", Role: user.RoleManager, EmployeeID: "EMP-003"})
	require.NoError(t, err)
	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := ClaimsFromContext(jwtauth.NewContext(context.Background(), decoded, nil))
	require.NoError(t, err)
	assert.Equal(t, "EMP-003", claims.EmployeeID)
}

func TestGenerateAccessToken_WrongSecretFailsDecode(t *testing.T) {
	issuer, err := NewJWTService("secret-a", "1h")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b", "1h")
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken(user.User{ID: "USR-002", Role: user.RoleHR})
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestNewJWTService_InvalidLifetime(t *testing.T) {
	for _, d := range []string{"soon", "0s", "-5m"} {
		_, err := NewJWTService("secret", d)
		assert.Error(t, err, d)
	}
}

func TestRevokeToken(t *testing.T) {
	svc, err := NewJWTService("secret", "1h")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
	assert.False(t, svc.IsTokenRevoked("abd"))
}

func TestClaimsFromContext_Missing(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.Error(t, err)
}
