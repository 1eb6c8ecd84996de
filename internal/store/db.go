// Package store provides SQLite persistence for mindwell check-ins, journal
// entries, and the cached streak.
package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// filePragmas apply to on-disk databases. WAL lets the HTTP and MCP servers
// read while the CLI writes.
var filePragmas = []string{"journal_mode(WAL)", "busy_timeout(5000)", "synchronous(NORMAL)"}

// DB is the mindwell record store.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the database at dbPath, creating it and its parent directory
// as needed, and brings the schema up to date.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	q := url.Values{}
	for _, p := range filePragmas {
		q.Add("_pragma", p)
	}
	return open(dbPath+"?"+q.Encode(), dbPath, 0)
}

// OpenInMemory opens a private in-memory database, useful for testing.
func OpenInMemory() (*DB, error) {
	// Each pooled connection would otherwise see its own empty database.
	return open(":memory:", ":memory:", 1)
}

func open(dsn, path string, maxConns int) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		conn.SetMaxOpenConns(maxConns)
	}

	db := &DB{conn: conn, path: path}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Path returns the database location, ":memory:" for in-memory stores.
func (db *DB) Path() string { return db.path }

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB.
func (db *DB) Conn() *sql.DB {
	return db.conn
}
