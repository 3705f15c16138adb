package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test submission
func createTestSubmission() *types.ContactSubmission {
	return &types.ContactSubmission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
	}
}

func setupMockPool(t *testing.T) (pgxmock.PgxPoolIface, func()) {
	mock, err := pgxmock.NewPool() // v4 always monitors pings
	require.NoError(t, err)
	return mock, mock.Close
}

func TestContactStore_CreateSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		mock, cleanup := setupMockPool(t)
		defer cleanup()

		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		sub := createTestSubmission()

		mock.ExpectQuery(`INSERT INTO contact_submissions \(first_name, last_name, email, subject, message\)`).
			WithArgs(sub.FirstName, sub.LastName, sub.Email, sub.Subject, sub.Message).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("sub-1", createdAt))

		err := NewContactStore(mock).CreateSubmission(ctx, sub)

		require.NoError(t, err)
		assert.Equal(t, "sub-1", sub.ID)
		assert.Equal(t, createdAt, sub.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("table missing", func(t *testing.T) {
		mock, cleanup := setupMockPool(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO contact_submissions").
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"})

		err := NewContactStore(mock).CreateSubmission(ctx, createTestSubmission())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42P01")
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row returned", func(t *testing.T) {
		mock, cleanup := setupMockPool(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO contact_submissions").WillReturnError(pgx.ErrNoRows)

		err := NewContactStore(mock).CreateSubmission(ctx, createTestSubmission())

		assert.ErrorIs(t, err, store.ErrEmptyResult)
	})
}

func TestContactStore_Ping(t *testing.T) {
	mock, cleanup := setupMockPool(t)
	defer cleanup()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	s := NewContactStore(mock)
	assert.NoError(t, s.Ping(context.Background()))
	assert.Error(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
