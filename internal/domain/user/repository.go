package user

import "context"

type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByLoginID retrieves a user by login ID
	GetByLoginID(ctx context.Context, loginID string) (User, error)

	// UpdatePassword replaces the password hash and clears the first-login flag
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
