package sqlite

import (
	"context"
	"fmt"

	"github.com/mandalnilabja/logscope/internal/storage/models"
)

// GetRequestLogs retrieves request logs with filtering, most recent first
func (r *Reader) GetRequestLogs(ctx context.Context, filter models.LogFilter) ([]*models.RequestLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrStorageClosed
	}

	query := `SELECT id, session_id, status_code, duration_ms,
		COALESCE(datetime(created_at), ''),`
	if filter.IncludePayloads {
		query += ` COALESCE(request_json, ''), response_json`
	} else {
		query += ` '', NULL`
	}
	query += ` FROM request_logs WHERE 1=1`

	var args []interface{}

	if filter.StatusCode != nil {
		query += " AND status_code = ?"
		args = append(args, *filter.StatusCode)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &Error{Op: "query request logs", Err: err}
	}
	defer rows.Close()

	var logs []*models.RequestLog
	for rows.Next() {
		var log models.RequestLog

		err := rows.Scan(&log.ID, &log.SessionID, &log.StatusCode, &log.DurationMs,
			&log.CreatedAt, &log.RequestJSON, &log.ResponseJSON)
		if err != nil {
			return nil, &Error{Op: "scan request log", Err: err}
		}

		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "read request logs", Err: err}
	}
	return logs, nil
}
