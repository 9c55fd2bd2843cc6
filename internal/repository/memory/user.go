package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
)

type userRepositoryImpl struct {
	store *store[user.User]
}

func NewUserRepository(seed []user.User) user.UserRepository {
	return &userRepositoryImpl{
		store: newStore(seed, func(u user.User) string { return u.ID }, user.ErrUserNotFound),
	}
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.store.get(id)
}

// GetByEmail matches case-insensitively.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	email = strings.TrimSpace(email)
	for _, u := range r.store.list() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) Update(ctx context.Context, id string, patch user.Patch) (user.User, error) {
	return r.store.update(id, patch.Apply, func(existing, u user.User) error {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailExists
		}
		return nil
	})
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.store.list(), nil
}
