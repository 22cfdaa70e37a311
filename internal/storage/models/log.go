package models

import "database/sql"

// RequestLog is a read-only projection of a request_logs row.
// RequestJSON and ResponseJSON are only populated by detailed queries.
type RequestLog struct {
	ID           int64
	SessionID    sql.NullString
	StatusCode   sql.NullInt64
	DurationMs   sql.NullInt64
	CreatedAt    string // normalised by SQLite datetime()
	RequestJSON  string
	ResponseJSON sql.NullString
}

// LogFilter contains parameters for filtering request logs
type LogFilter struct {
	StatusCode      *int
	Limit           int
	IncludePayloads bool
}

// StatusFilter returns a filter matching the given status code.
func StatusFilter(code, limit int, payloads bool) LogFilter {
	return LogFilter{StatusCode: &code, Limit: limit, IncludePayloads: payloads}
}
