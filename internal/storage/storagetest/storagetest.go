// Package storagetest builds throwaway request_logs databases for tests.
package storagetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema is the request_logs table as written by the chat backend.
const Schema = `
CREATE TABLE IF NOT EXISTS request_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT,
	request_json TEXT NOT NULL,
	response_json TEXT,
	status_code INTEGER,
	duration_ms INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_request_logs_session ON request_logs(session_id);
CREATE INDEX IF NOT EXISTS idx_request_logs_created ON request_logs(created_at);
`

// Row is one request_logs row. Nil fields are stored as NULL.
type Row struct {
	SessionID    any
	RequestJSON  string
	ResponseJSON any
	StatusCode   any
	DurationMs   any
	CreatedAt    string
}

// NewDB creates a database file in a temp dir, inserts rows in order and
// returns its path. The file is removed when the test ends.
func NewDB(t testing.TB, rows ...Row) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for i, r := range rows {
		created := r.CreatedAt
		if created == "" {
			created = "2025-01-01 00:00:00"
		}
		_, err := db.Exec(`INSERT INTO request_logs
			(session_id, request_json, response_json, status_code, duration_ms, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.SessionID, r.RequestJSON, r.ResponseJSON, r.StatusCode, r.DurationMs, created)
		if err != nil {
			t.Fatalf("failed to insert row %d: %v", i, err)
		}
	}

	return path
}

// NewEmptyDB creates a database file without the request_logs table.
func NewEmptyDB(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE unrelated (id INTEGER)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return path
}
