package user

import "context"

// UserRepository supplies user identities. List returns the full roster the
// manager aggregation view covers.
type UserRepository interface {
	// GetByID retrieves a user, ErrUserNotFound when missing.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, ErrUserNotFound when missing.
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all users ordered by display name.
	List(ctx context.Context) ([]User, error)
}
