package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	// Update returns ErrEmailExists when the new email belongs to another user.
	Update(ctx context.Context, id string, patch Patch) (User, error)
}
