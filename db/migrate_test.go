package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5URL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://u:p@localhost/db", "pgx5://u:p@localhost/db"},
		{"pgx5://u:p@localhost/db", "pgx5://u:p@localhost/db"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5URL(tt.in), tt.in)
	}
}

func TestMigrationFilesArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestInitialMigrationCreatesContactTable(t *testing.T) {
	up, err := fs.ReadFile(migrationFiles, "migrations/000001_create_contact_submissions.up.sql")
	require.NoError(t, err)

	sql := string(up)
	for _, column := range []string{"first_name", "last_name", "email", "subject", "message", "created_at"} {
		assert.Contains(t, sql, column)
	}
}
