package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/globalhorizons/backend/db"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	store := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Connect())
	t.Cleanup(func() { _ = store.Disconnect() })
	require.NoError(t, db.InitSchema(context.Background(), store))
	return store
}

func TestPlaceholderRewrite(t *testing.T) {
	require.Equal(t, "SELECT * FROM users WHERE username = ? AND is_admin = ?",
		placeholderRe.ReplaceAllString("SELECT * FROM users WHERE username = $1 AND is_admin = $2", "?"))
}

func TestWriteReturnsLastID(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	res, err := store.Query(ctx, `
		INSERT INTO applications (name, email, phone, destination, position)
		VALUES ($1, $2, $3, $4, $5)
	`, "A", "a@example.com", "1", "norway", "farming")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
	require.Equal(t, int64(1), res.LastID)
	require.Empty(t, res.Rows)

	res, err = store.Query(ctx, `
		INSERT INTO applications (name, email, phone, destination, position)
		VALUES ($1, $2, $3, $4, $5)
	`, "B", "b@example.com", "2", "sweden", "fishing")
	require.NoError(t, err)
	require.Equal(t, int64(2), res.LastID)
}

func TestReadClassification(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	_, err := store.Query(ctx, `
		INSERT INTO applications (name, email, phone, destination, position)
		VALUES ($1, $2, $3, $4, $5)
	`, "A", "a@example.com", "1", "norway", "farming")
	require.NoError(t, err)

	// Leading whitespace and lowercase still count as a read
	res, err := store.Query(ctx, "  select name, email from applications where email = $1", "a@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "A", res.Rows[0]["name"])
	require.Equal(t, "a@example.com", res.Rows[0]["email"])
	require.Zero(t, res.LastID)
}

func TestSelectNoMatches(t *testing.T) {
	store := newTestDB(t)

	res, err := store.Query(context.Background(), "SELECT * FROM users WHERE username = $1", "nobody")
	require.NoError(t, err)
	require.Equal(t, 0, res.RowCount)
	require.NotNil(t, res.Rows)
	require.Empty(t, res.Rows)
}

func TestUniqueUsernameConstraint(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	_, err := store.Query(ctx, "INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)", "admin", "hash", 1)
	require.NoError(t, err)

	_, err = store.Query(ctx, "INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)", "admin", "hash2", 0)
	require.Error(t, err)
}
