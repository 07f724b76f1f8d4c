package sqlite

import (
	"context"
	"database/sql"
	"regexp"

	"github.com/globalhorizons/backend/db"

	_ "modernc.org/sqlite"
)

var placeholderRe = regexp.MustCompile(`\$\d+`)

type SQLiteDB struct {
	Conn *sql.DB
	Path string
}

func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{Path: path}
}

func (s *SQLiteDB) Connect() error {
	conn, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return err
	}

	// The embedded engine is single-writer; one connection keeps the driver
	// from tripping over its own lock.
	conn.SetMaxOpenConns(1)

	s.Conn = conn
	return s.Conn.Ping()
}

func (s *SQLiteDB) Disconnect() error {
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}

func (s *SQLiteDB) Dialect() db.Dialect {
	return db.SQLite
}

// Query rewrites $n placeholders to the ? markers SQLite expects, then runs
// the statement. Reads return rows; writes return the affected count and the
// generated rowid of the last insert, since SQLite has no usable RETURNING
// path here.
func (s *SQLiteDB) Query(ctx context.Context, text string, params ...interface{}) (*db.Result, error) {
	rewritten := placeholderRe.ReplaceAllString(text, "?")

	if db.IsSelect(rewritten) {
		rows, err := s.Conn.QueryContext(ctx, rewritten, params...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		out, err := db.ScanRows(rows)
		if err != nil {
			return nil, err
		}
		return &db.Result{Rows: out, RowCount: len(out)}, nil
	}

	res, err := s.Conn.ExecContext(ctx, rewritten, params...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &db.Result{Rows: []map[string]interface{}{}, RowCount: int(affected), LastID: lastID}, nil
}
