// Package storage provides read-only access to persisted request logs.
package storage

import (
	"context"

	"github.com/mandalnilabja/logscope/internal/storage/models"
	"github.com/mandalnilabja/logscope/internal/storage/sqlite"
)

// Re-export types from models package for convenience
type (
	RequestLog    = models.RequestLog
	LogFilter     = models.LogFilter
	Summary       = models.Summary
	ProviderStats = models.ProviderStats
)

// Re-export functions from models package
var StatusFilter = models.StatusFilter

// Error wraps driver and query failures.
type Error = sqlite.Error

// ErrStorageClosed is returned by queries issued after Close.
var ErrStorageClosed = sqlite.ErrStorageClosed

// Reader defines read-only queries over the request log store
type Reader interface {
	GetRequestLogs(ctx context.Context, filter models.LogFilter) ([]*models.RequestLog, error)
	GetSummary(ctx context.Context) (*models.Summary, error)
	GetProviderStats(ctx context.Context) ([]*models.ProviderStats, error)

	Close() error
}

// OpenSQLiteReader opens an existing SQLite log database read-only.
// Callers must Close the returned Reader.
func OpenSQLiteReader(ctx context.Context, dbPath string) (Reader, error) {
	r, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return r, nil
}
