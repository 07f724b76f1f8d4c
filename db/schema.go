package db

import "context"

// InitSchema creates the users and applications tables if they are absent,
// using the column type spellings the active backend understands. Safe to run
// against an already-initialized database.
func InitSchema(ctx context.Context, store Store) error {
	idType := "INTEGER"
	tsType := "DATETIME DEFAULT CURRENT_TIMESTAMP"
	if store.Dialect() == Postgres {
		idType = "SERIAL"
		tsType = "TIMESTAMP DEFAULT CURRENT_TIMESTAMP"
	}

	usersTable := `
		CREATE TABLE IF NOT EXISTS users (
			id ` + idType + ` PRIMARY KEY,
			username VARCHAR(255) UNIQUE,
			password VARCHAR(255),
			is_admin INTEGER DEFAULT 0
		)`

	appsTable := `
		CREATE TABLE IF NOT EXISTS applications (
			id ` + idType + ` PRIMARY KEY,
			name VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(255),
			destination VARCHAR(255),
			position VARCHAR(255),
			status VARCHAR(50) DEFAULT 'pending',
			created_at ` + tsType + `
		)`

	if _, err := store.Query(ctx, usersTable); err != nil {
		return err
	}
	if _, err := store.Query(ctx, appsTable); err != nil {
		return err
	}
	return nil
}
