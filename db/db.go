package db

import (
	"context"
	"database/sql"
	"strings"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Result is the normalized outcome of a statement, shaped the same way for
// both backends. Rows is empty for non-returning statements. LastID carries
// the generated primary key of the last insert on the embedded backend only;
// against Postgres callers must use a RETURNING clause instead.
type Result struct {
	Rows     []map[string]interface{}
	RowCount int
	LastID   int64
}

// Store is the single query interface the rest of the system talks to.
// Statements are written with Postgres-style $1, $2, ... placeholders and
// order-sensitive params; each backend hides its own placeholder syntax and
// result shape behind this contract.
type Store interface {
	Connect() error
	Disconnect() error
	Dialect() Dialect
	Query(ctx context.Context, text string, params ...interface{}) (*Result, error)
}

// IsSelect reports whether the statement is a read, judged by its leading
// keyword (case-insensitive, surrounding whitespace trimmed).
func IsSelect(text string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(text)), "SELECT")
}

// ScanRows drains sql.Rows into the normalized row shape, converting []byte
// column values to strings so both drivers yield comparable results.
func ScanRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
