package auth

import "context"

type AuthService interface {
	// Login checks the credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Me returns the user the access token in ctx belongs to
	Me(ctx context.Context) (UserResponse, error)

	// UpdateProfile changes the name or email of the user in ctx
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)

	// Logout revokes token
	Logout(ctx context.Context, token string) error
}
