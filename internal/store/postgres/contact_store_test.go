package postgres

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/db"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("Skipping integration test on Windows - rootless Docker is not supported")
	}
	logger.IsTest = true

	ctx := context.Background()
	pgContainer, err := postgresContainer.Run(ctx,
		"postgres:16-alpine",
		postgresContainer.WithDatabase("testdb"),
		postgresContainer.WithUsername("testuser"),
		postgresContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestContactStore_Integration(t *testing.T) {
	pool := setupTestDatabase(t)
	ctx := context.Background()
	s := NewContactStore(pool)

	require.NoError(t, s.Ping(ctx))

	first := createTestSubmission()
	second := createTestSubmission()
	require.NoError(t, s.CreateSubmission(ctx, first))
	require.NoError(t, s.CreateSubmission(ctx, second))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID, "identical submissions are stored as separate rows")
	assert.False(t, first.CreatedAt.IsZero())

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM contact_submissions WHERE email = $1", first.Email).Scan(&count))
	assert.Equal(t, 2, count)
}
