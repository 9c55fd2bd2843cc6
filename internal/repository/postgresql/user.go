package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const userColumns = `id, employee_code, name, email, password_hash, role, department, created_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row scanner) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.EmployeeCode, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.CreatedAt)
	return u, noRows(err, user.ErrUserNotFound)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = $1`
	return scanUser(q.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	return queryAll(ctx, q, query, scanUser)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, patch user.Patch) (user.User, error) {
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	u, err := updateReturning(ctx, GetQuerier(ctx, r.db), "users", userColumns, id, set, scanUser)
	if _, ok := constraintViolation(err, codeUniqueViolation); ok {
		return user.User{}, user.ErrEmailExists
	}
	return u, err
}

// insertUser is used by Seed; accounts are not created through the API.
func (r *userRepositoryImpl) insertUser(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO users (id, employee_code, name, email, password_hash, role, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	if _, err := q.Exec(ctx, query, u.ID, u.EmployeeCode, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Department); err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	return nil
}
