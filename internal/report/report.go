// Package report renders request log analysis as plain text.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mandalnilabja/logscope/internal/analysis"
	"github.com/mandalnilabja/logscope/internal/payload"
)

// Renderer writes a multi-section report built from an Aggregator.
type Renderer struct {
	agg     *analysis.Aggregator
	decoder *payload.Decoder
	logger  *slog.Logger
}

// New creates a Renderer. decoder and logger may be nil.
func New(agg *analysis.Aggregator, decoder *payload.Decoder, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{agg: agg, decoder: decoder, logger: logger}
}

type step struct {
	title string
	build func(ctx context.Context) ([]string, error)
}

func (r *Renderer) steps() []step {
	return []step{
		{"Overall summary", r.summary},
		{fmt.Sprintf("Last %d errors 500", r.agg.Limits().Recent), r.recentFailures},
		{"Error 500 details with response analysis", r.failureDetails},
		{"Provider breakdown", r.providerBreakdown},
		{"Response error types", r.failureTypes},
	}
}

// Render writes the report for the store identified by source to w.
// Every section is attempted; a section that fails is replaced by an error
// line and its error is included in the returned error.
func (r *Renderer) Render(ctx context.Context, w io.Writer, source string) error {
	if _, err := fmt.Fprintf(w, "=== Log analysis: %s ===\n", source); err != nil {
		return err
	}

	var errs []error
	for _, s := range r.steps() {
		lines, err := s.build(ctx)
		if err != nil {
			r.logger.Error("section failed", "section", s.title, "error", err)
			lines = []string{fmt.Sprintf("❌ %s: %v", s.title, err)}
			errs = append(errs, fmt.Errorf("%s: %w", s.title, err))
		}

		if _, err := io.WriteString(w, Section{Title: s.title, Lines: lines}.String()); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	_, err := io.WriteString(w, "\n=== Analysis complete ===\n")
	return err
}
