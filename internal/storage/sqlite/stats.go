package sqlite

import (
	"context"
	"strings"

	"github.com/mandalnilabja/logscope/internal/provider"
	"github.com/mandalnilabja/logscope/internal/storage/models"
)

// GetSummary counts all request logs by status class
func (r *Reader) GetSummary(ctx context.Context) (*models.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrStorageClosed
	}

	query := `SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN status_code = 500 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status_code = 200 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status_code IS NULL THEN 1 ELSE 0 END), 0)
		FROM request_logs`

	var s models.Summary
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Total, &s.Errors500, &s.Success200, &s.NullStatus)
	if err != nil {
		return nil, &Error{Op: "query summary", Err: err}
	}

	return &s, nil
}

// GetProviderStats groups all request logs by inferred provider, largest
// group first. Grouping uses the same ordered markers as provider.Infer.
func (r *Reader) GetProviderStats(ctx context.Context) ([]*models.ProviderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrStorageClosed
	}

	expr, args := providerCase()
	query := `SELECT ` + expr + `,
		COUNT(*),
		COALESCE(SUM(CASE WHEN status_code = 500 THEN 1 ELSE 0 END), 0)
		FROM request_logs
		GROUP BY 1
		ORDER BY 2 DESC, 1 ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &Error{Op: "query provider stats", Err: err}
	}
	defer rows.Close()

	var stats []*models.ProviderStats
	for rows.Next() {
		var ps models.ProviderStats
		if err := rows.Scan(&ps.Provider, &ps.Total, &ps.Errors500); err != nil {
			return nil, &Error{Op: "scan provider stats", Err: err}
		}
		stats = append(stats, &ps)
	}

	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "read provider stats", Err: err}
	}
	return stats, nil
}

// providerCase builds a CASE expression mapping request_json to a provider
// name. instr is case-sensitive, unlike LIKE.
func providerCase() (string, []interface{}) {
	var b strings.Builder
	var args []interface{}

	b.WriteString("CASE")
	for _, rule := range provider.Rules() {
		b.WriteString(" WHEN instr(request_json, ?) > 0 THEN ?")
		args = append(args, rule.Marker, rule.Name)
	}
	b.WriteString(" ELSE ? END")
	args = append(args, provider.Unspecified)

	return b.String(), args
}
