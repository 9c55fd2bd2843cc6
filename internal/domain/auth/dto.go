package auth

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	return errs.Err()
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,max=255"`
}

func (r *UpdateProfileRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	if r.Name == nil && r.Email == nil {
		errs.Add("profile", "at least one of name or email is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs.Add("email", "invalid email format")
	}
	return errs.Err()
}

func (r *UpdateProfileRequest) ToPatch() user.Patch {
	var p user.Patch
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		p.Email = &email
	}
	return p
}

type TokenResponse struct {
	AccessToken          string       `json:"access_token"`
	TokenType            string       `json:"token_type"`
	AccessTokenExpiresIn int64        `json:"access_token_expires_in"`
	User                 UserResponse `json:"user"`
}

type UserResponse struct {
	ID           string   `json:"id"`
	EmployeeCode string   `json:"employee_code"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Department   string   `json:"department"`
	EmployeeID   string   `json:"employee_id,omitempty"`
	Permissions  []string `json:"permissions"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		Department:   u.Department,
		EmployeeID:   u.EmployeeID,
		Permissions:  user.PermissionsFor(u.Role),
	}
}
