// Package analysis computes the aggregates shown in a log report.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/mandalnilabja/logscope/internal/classify"
	"github.com/mandalnilabja/logscope/internal/payload"
	"github.com/mandalnilabja/logscope/internal/storage"
)

// statusServerError is the status code counted as a failure.
const statusServerError = 500

// Limits bounds the failure listings.
type Limits struct {
	Recent       int // rows in the recent-failures table
	Details      int // failures shown with payload analysis
	FailureTypes int // failures classified by response shape
	Preview      int // characters of raw response shown per failure type
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{Recent: 10, Details: 5, FailureTypes: 10, Preview: 150}
}

// orDefault replaces non-positive limits with defaults.
func (l Limits) orDefault() Limits {
	d := DefaultLimits()
	if l.Recent <= 0 {
		l.Recent = d.Recent
	}
	if l.Details <= 0 {
		l.Details = d.Details
	}
	if l.FailureTypes <= 0 {
		l.FailureTypes = d.FailureTypes
	}
	if l.Preview <= 0 {
		l.Preview = d.Preview
	}
	return l
}

// FailureType is the classified response shape of one failed request.
type FailureType struct {
	ID      int64
	Label   classify.Label
	Preview string
}

// Aggregator runs read-only queries against a log store.
type Aggregator struct {
	store  storage.Reader
	limits Limits
	logger *slog.Logger
}

// New creates an Aggregator. A nil logger discards log output.
func New(store storage.Reader, limits Limits, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Aggregator{store: store, limits: limits.orDefault(), logger: logger}
}

// Limits returns the effective limits.
func (a *Aggregator) Limits() Limits {
	return a.limits
}

// Summary returns overall counts by status class.
func (a *Aggregator) Summary(ctx context.Context) (*storage.Summary, error) {
	defer a.timed("summary")()
	return a.store.GetSummary(ctx)
}

// RecentFailures returns the most recent 500 responses without payloads.
func (a *Aggregator) RecentFailures(ctx context.Context) ([]*storage.RequestLog, error) {
	defer a.timed("recent_failures")()
	return a.store.GetRequestLogs(ctx, storage.StatusFilter(statusServerError, a.limits.Recent, false))
}

// FailureDetails returns the most recent 500 responses with payloads.
func (a *Aggregator) FailureDetails(ctx context.Context) ([]*storage.RequestLog, error) {
	defer a.timed("failure_details")()
	return a.store.GetRequestLogs(ctx, storage.StatusFilter(statusServerError, a.limits.Details, true))
}

// ProviderBreakdown returns per-provider totals, largest first.
func (a *Aggregator) ProviderBreakdown(ctx context.Context) ([]*storage.ProviderStats, error) {
	defer a.timed("provider_breakdown")()
	return a.store.GetProviderStats(ctx)
}

// FailureTypes classifies the response payloads of the most recent 500s.
func (a *Aggregator) FailureTypes(ctx context.Context) ([]FailureType, error) {
	defer a.timed("failure_types")()

	logs, err := a.store.GetRequestLogs(ctx, storage.StatusFilter(statusServerError, a.limits.FailureTypes, true))
	if err != nil {
		return nil, err
	}

	types := make([]FailureType, 0, len(logs))
	for _, log := range logs {
		raw := log.ResponseJSON.String
		types = append(types, FailureType{
			ID:      log.ID,
			Label:   classify.Classify(raw),
			Preview: payload.Truncate(raw, a.limits.Preview),
		})
	}
	return types, nil
}

func (a *Aggregator) timed(query string) func() {
	start := time.Now()
	return func() {
		a.logger.Debug("query finished",
			"query", query,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
