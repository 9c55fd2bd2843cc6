package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	employeeRepo employee.EmployeeRepository
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		employeeRepo:   employeeRepository,
	}
}

// linkEmployee sets the ID of the employee whose code the user carries.
func (a *AuthServiceImpl) linkEmployee(ctx context.Context, u *user.User) error {
	if u.EmployeeCode == "" {
		return nil
	}
	employees, err := a.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	for _, e := range employees {
		if strings.EqualFold(e.EmployeeCode, u.EmployeeCode) {
			u.EmployeeID = e.ID
			return nil
		}
	}
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.TrimSpace(loginReq.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.linkEmployee(ctx, &userData); err != nil {
		return auth.TokenResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("User logged in", "user_id", userData.ID, "role", userData.Role)
	return auth.TokenResponse{
		AccessToken:          token,
		TokenType:            "Bearer",
		AccessTokenExpiresIn: expiresAt,
		User:                 auth.NewUserResponse(userData),
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.UserResponse{}, auth.ErrUserNotFound
		}
		return auth.UserResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	userData.EmployeeID = claims.EmployeeID
	return auth.NewUserResponse(userData), nil
}

// UpdateProfile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (auth.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	updated, err := a.UserRepository.Update(ctx, claims.UserID, req.ToPatch())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.UserResponse{}, auth.ErrUserNotFound
		}
		if errors.Is(err, user.ErrEmailExists) {
			return auth.UserResponse{}, err
		}
		return auth.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	slog.Info("Profile updated", "user_id", updated.ID)
	updated.EmployeeID = claims.EmployeeID
	return auth.NewUserResponse(updated), nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}
