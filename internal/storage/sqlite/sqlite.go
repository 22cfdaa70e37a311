// Package sqlite provides read-only access to a request_logs SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// Reader implements the storage.Reader interface using SQLite
type Reader struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// Open opens the database at dbPath read-only and verifies the connection.
// The database file must already exist.
func Open(ctx context.Context, dbPath string) (*Reader, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, &Error{Op: "open database", Err: err}
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, &Error{Op: "open database", Err: err}
	}

	// One connection for the whole run
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &Error{Op: "connect to database", Err: err}
	}

	return &Reader{db: db}, nil
}

// dsn builds a read-only SQLite URI. The path is percent-encoded so that
// '#', '?' and '%' in file names stay part of the path.
// Relative paths are made absolute so they are not read as a URI authority.
func dsn(dbPath string) string {
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	path := filepath.ToSlash(dbPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := url.URL{
		Scheme:   "file",
		Path:     path,
		RawQuery: "mode=ro&_pragma=busy_timeout(5000)",
	}
	return u.String()
}

// Close closes the database connection
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.closed = true
	return r.db.Close()
}
