package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/globalhorizons/backend/db"

	_ "github.com/lib/pq"
)

type PostgresDB struct {
	Conn *sql.DB
	URL  string
}

func NewPostgresDB(url string) *PostgresDB {
	return &PostgresDB{URL: url}
}

func (p *PostgresDB) Connect() error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}

	// Pool tuning suitable for small managed instances
	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)

	p.Conn = conn
	return p.Conn.Ping()
}

func (p *PostgresDB) Disconnect() error {
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}

func (p *PostgresDB) Dialect() db.Dialect {
	return db.Postgres
}

// Query dispatches the statement unchanged: Postgres understands the $n
// placeholders natively. Statements that return rows (reads, or writes with a
// RETURNING clause) go through Query; everything else through Exec so the
// affected-row count comes back.
func (p *PostgresDB) Query(ctx context.Context, text string, params ...interface{}) (*db.Result, error) {
	if db.IsSelect(text) || strings.Contains(strings.ToUpper(text), "RETURNING") {
		rows, err := p.Conn.QueryContext(ctx, text, params...)
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

	res, err := p.Conn.ExecContext(ctx, text, params...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	return &db.Result{Rows: []map[string]interface{}{}, RowCount: int(affected)}, nil
}
