package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/globalhorizons/backend/db"
	"github.com/globalhorizons/backend/db/sqlite"
)

func TestInitSchemaIdempotent(t *testing.T) {
	store := sqlite.NewSQLiteDB(filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, store.Connect())
	defer store.Disconnect()

	ctx := context.Background()
	require.NoError(t, db.InitSchema(ctx, store))

	_, err := store.Query(ctx, "INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)", "admin", "hash", 1)
	require.NoError(t, err)

	// Re-running must neither error nor touch existing rows
	require.NoError(t, db.InitSchema(ctx, store))

	res, err := store.Query(ctx, "SELECT username, password FROM users")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
	require.Equal(t, "admin", res.Rows[0]["username"])
	require.Equal(t, "hash", res.Rows[0]["password"])
}

func TestStatusAndTimestampDefaults(t *testing.T) {
	store := sqlite.NewSQLiteDB(filepath.Join(t.TempDir(), "defaults.db"))
	require.NoError(t, store.Connect())
	defer store.Disconnect()

	ctx := context.Background()
	require.NoError(t, db.InitSchema(ctx, store))

	_, err := store.Query(ctx, `
		INSERT INTO applications (name, email, phone, destination, position)
		VALUES ($1, $2, $3, $4, $5)
	`, "A", "a@example.com", "1", "norway", "farming")
	require.NoError(t, err)

	res, err := store.Query(ctx, "SELECT status, created_at FROM applications")
	require.NoError(t, err)
	require.Equal(t, "pending", res.Rows[0]["status"])
	require.NotEmpty(t, res.Rows[0]["created_at"])
}
