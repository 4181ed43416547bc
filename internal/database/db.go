package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection that holds settings, daily stats and
// the segment log.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// One process, one writer.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Err: classify(err)}
	}

	d := &Database{DB: conn, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS daily_stats (
			date TEXT PRIMARY KEY,
			study_sessions INTEGER NOT NULL DEFAULT 0,
			study_minutes INTEGER NOT NULL DEFAULT 0,
			break_minutes INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS segments (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			mode TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			started_at DATETIME,
			ended_at DATETIME
		);`,
		`CREATE INDEX IF NOT EXISTS idx_segments_date ON segments(date);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Resource: "schema", Err: classify(err)}
		}
	}
	return nil
}

func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "file is not a database") || strings.Contains(msg, "malformed") {
		return fmt.Errorf("%w: %v", ErrDatabaseCorrupted, err)
	}
	return err
}
