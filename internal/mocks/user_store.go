package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/mfaisal/user-api/internal/domain"
	"github.com/mfaisal/user-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Each method can be overridden through its function field; otherwise a
// default in-memory implementation backed by Users is used, with IDs
// assigned sequentially like a serial column.
type MockUserStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]domain.User, error)
	CreateFn  func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	UpdateFn  func(ctx context.Context, user *domain.User) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Users      map[int64]*domain.User
	LastUserID int64

	// Errors returned by the default implementation when set
	ListError   error
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[int64]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	ids := make([]int64, 0, len(m.Users))
	for id := range m.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *m.Users[id])
	}
	return users, nil
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.LastUserID++
	user.ID = m.LastUserID
	stored := *user
	m.Users[user.ID] = &stored
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, fmt.Errorf("%w: id %d", store.ErrUserNotFound, id)
	}

	copied := *user
	return &copied, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return fmt.Errorf("%w: id %d", store.ErrUserNotFound, user.ID)
	}

	stored := *user
	m.Users[user.ID] = &stored
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return fmt.Errorf("%w: id %d", store.ErrUserNotFound, id)
	}

	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface.
// The mock has no transaction state, so the same store is returned.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
