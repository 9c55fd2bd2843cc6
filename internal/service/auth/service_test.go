package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func newTestService(t *testing.T) (auth.AuthService, *jwt.JWTService) {
	t.Helper()
	set, err := fixtures.Load(time.Now())
	require.NoError(t, err)
	repos := memory.New(set)
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)
	return NewAuthService(repos.Users, repos.Employees, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: " HR@indianports.gov.in ", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Greater(t, resp.AccessTokenExpiresIn, time.Now().Unix())
		assert.Equal(t, "USR-002", resp.User.ID)
		assert.Equal(t, "hr", resp.User.Role)
		assert.Contains(t, resp.User.Permissions, string(user.PermissionLeaveApprove))

		token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
		require.NoError(t, err)
		role, _ := token.Get("role")
		assert.Equal(t, "hr", role)
		employeeID, _ := token.Get("employee_id")
		assert.Equal(t, "EMP-002", employeeID, "linked through the employee code")
		assert.Equal(t, "EMP-002", resp.User.EmployeeID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@indianports.gov.in", Password: "password124"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@indianports.gov.in", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "email")
		assert.Contains(t, verrs.ToMap(), "password")
	})
}

func TestMe(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@indianports.gov.in", Password: "password123"})
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)

	me, err := svc.Me(jwtauth.NewContext(ctx, token, nil))
	require.NoError(t, err)
	assert.Equal(t, "USR-003", me.ID)
	assert.Equal(t, "Department Manager", me.Name)
	assert.ElementsMatch(t, user.PermissionsFor(user.RoleManager), me.Permissions)

	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	ghost, _, err := jwtService.GenerateAccessToken(user.User{ID: "USR-404", Role: user.RoleHR})
	require.NoError(t, err)
	ghostToken, err := jwtService.JWTAuth().Decode(ghost)
	require.NoError(t, err)
	_, err = svc.Me(jwtauth.NewContext(ctx, ghostToken, nil))
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@indianports.gov.in", Password: "password123"})
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	authed := jwtauth.NewContext(ctx, token, nil)

	name, email := "  Priya Nair ", " Priya.Nair@IndianPorts.gov.in "
	updated, err := svc.UpdateProfile(authed, auth.UpdateProfileRequest{Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", updated.Name)
	assert.Equal(t, "priya.nair@indianports.gov.in", updated.Email)
	assert.Equal(t, "EMP-002", updated.EmployeeID)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "priya.nair@indianports.gov.in", Password: "password123"})
	assert.NoError(t, err, "the new email signs in")

	taken := "admin@indianports.gov.in"
	_, err = svc.UpdateProfile(authed, auth.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	blank := "  "
	_, err = svc.UpdateProfile(authed, auth.UpdateProfileRequest{Name: &blank})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")

	_, err = svc.UpdateProfile(authed, auth.UpdateProfileRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "profile")

	_, err = svc.UpdateProfile(ctx, auth.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@indianports.gov.in", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, ""), auth.ErrInvalidToken)
}
