package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mfaisal/user-api/internal/domain"
	"github.com/mfaisal/user-api/internal/redact"
	"github.com/mfaisal/user-api/internal/store"
)

// UserService provides the user CRUD operations.
// Absent rows surface as store.ErrUserNotFound; translation to an HTTP
// status happens once, at the API boundary.
type UserService interface {
	// ListUsers returns all users ordered by ID.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user built from the given fields and returns
	// it with the database-generated ID populated.
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// UpdateUser overwrites every field of the user with the given values.
	// This is a full replace, not a partial patch.
	UpdateUser(ctx context.Context, id int64, username, email, password string) (*domain.User, error)

	// DeleteUser removes the user and returns the deleted row snapshot.
	DeleteUser(ctx context.Context, id int64) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService. Mutations run inside a
// transaction on db; when db is nil (stores that manage their own state,
// e.g. in tests) operations run directly on the store.
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// withTxStore runs fn against a transaction-bound store, committing on nil
// and rolling back on error. The commit is explicit: a mutation inside fn
// that errors out is lost on release.
func (s *UserServiceImpl) withTxStore(ctx context.Context, fn func(txStore store.UserStore) error) error {
	if s.db == nil {
		return fn(s.userStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(s.userStore.WithTx(tx))
	})
}

// ListUsers returns all users ordered by ID.
// Reads run on the pool without an explicit transaction.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users",
			"error", redact.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	s.logger.Debug("listed users successfully",
		"count", len(users))

	return users, nil
}

// CreateUser inserts a new user within a transaction and returns it with
// its generated ID. No duplicate check is performed.
func (s *UserServiceImpl) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	user := domain.NewUser(username, email, password)

	err := s.withTxStore(ctx, func(txStore store.UserStore) error {
		return txStore.Create(ctx, user)
	})
	if err != nil {
		s.logger.Error("failed to create user",
			"error", redact.Error(err),
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found",
				"user_id", id)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", redact.Error(err),
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	s.logger.Debug("retrieved user successfully",
		"user_id", user.ID)

	return user, nil
}

// UpdateUser loads the row, overwrites every field from the given values
// and saves it back, all within one transaction. Concurrent updates to the
// same row are last-writer-wins; there is no version check.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	id int64,
	username, email, password string,
) (*domain.User, error) {
	var updated *domain.User

	err := s.withTxStore(ctx, func(txStore store.UserStore) error {
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		user.Username = username
		user.Email = email
		user.Password = password

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to update non-existent user",
				"user_id", id)
		} else {
			s.logger.Error("failed to update user",
				"error", redact.Error(err),
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated successfully",
		"user_id", id)

	return updated, nil
}

// DeleteUser loads the row and removes it within one transaction, returning
// the now-detached snapshot.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	var deleted *domain.User

	err := s.withTxStore(ctx, func(txStore store.UserStore) error {
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}

		deleted = user
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to delete non-existent user",
				"user_id", id)
		} else {
			s.logger.Error("failed to delete user",
				"error", redact.Error(err),
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted successfully",
		"user_id", id)

	return deleted, nil
}
