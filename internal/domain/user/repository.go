package user

import "context"

type UserRepository interface {
	// GetByID returns ErrUserNotFound when no user matches.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail returns ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (User, error)
}
