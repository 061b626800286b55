package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfaisal/user-api/internal/store"
)

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

// TestMapErrorNil verifies nil passes through.
func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, MapError(nil))
}

// TestMapErrorNoRows verifies sql.ErrNoRows maps to store.ErrNotFound.
func TestMapErrorNoRows(t *testing.T) {
	err := MapError(sql.ErrNoRows)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// TestMapErrorConstraintViolations verifies pg constraint errors map to
// store.ErrInvalidEntity.
func TestMapErrorConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"unique violation", "23505"},
		{"not null violation", "23502"},
		{"check violation", "23514"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, ConstraintName: "users_pkey"}
			err := MapError(fmt.Errorf("exec: %w", pgErr))
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	}
}

// TestMapErrorUnknown verifies unmapped errors come back unchanged.
func TestMapErrorUnknown(t *testing.T) {
	original := errors.New("connection reset")
	assert.Equal(t, original, MapError(original))
}

// TestIsNotFoundError covers both error sources.
func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(store.ErrUserNotFound))
	assert.False(t, IsNotFoundError(errors.New("other")))
}

// TestCheckRowsAffected verifies the zero-rows case surfaces as not found.
func TestCheckRowsAffected(t *testing.T) {
	require.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, "user"))

	err := CheckRowsAffected(fakeResult{rows: 0}, "user")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "user")

	err = CheckRowsAffected(fakeResult{rows: 0}, "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = CheckRowsAffected(fakeResult{err: errors.New("driver does not support")}, "user")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	err = CheckRowsAffected(nil, "user")
	require.Error(t, err)
}
