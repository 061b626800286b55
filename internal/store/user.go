package store

import (
	"context"
	"database/sql"

	"github.com/mfaisal/user-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns all users ordered by ID.
	// No pagination is applied.
	List(ctx context.Context) ([]domain.User, error)

	// Create saves a new user to the store and populates its
	// database-generated ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Update overwrites every mutable field of an existing user.
	// The caller must provide a complete user object.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller,
	// typically a service.
	WithTx(tx *sql.Tx) UserStore
}
