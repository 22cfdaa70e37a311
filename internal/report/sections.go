package report

import (
	"context"
	"fmt"
	"strings"
)

const noFailures = "No 500 errors found"

func (r *Renderer) summary(ctx context.Context) ([]string, error) {
	s, err := r.agg.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Total logs: %d", s.Total),
		fmt.Sprintf("Errors 500: %d", s.Errors500),
		fmt.Sprintf("Success 200: %d", s.Success200),
		fmt.Sprintf("No status: %d", s.NullStatus),
		fmt.Sprintf("Other statuses: %d", s.Other()),
	}, nil
}

func (r *Renderer) recentFailures(ctx context.Context) ([]string, error) {
	logs, err := r.agg.RecentFailures(ctx)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return []string{noFailures}, nil
	}

	lines := []string{
		fmt.Sprintf("%-6s %-30s %-8s %-10s %s", "ID", "Session ID", "Status", "Duration", "Created At"),
		strings.Repeat("-", 90),
	}
	for _, log := range logs {
		lines = append(lines, fmt.Sprintf("%-6d %-30s %-8d %-10d %s",
			log.ID, orNA(log.SessionID.String), log.StatusCode.Int64, log.DurationMs.Int64, log.CreatedAt))
	}
	return lines, nil
}

func (r *Renderer) failureDetails(ctx context.Context) ([]string, error) {
	logs, err := r.agg.FailureDetails(ctx)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return []string{noFailures}, nil
	}

	var lines []string
	for i, log := range logs {
		lines = append(lines,
			"",
			fmt.Sprintf("Error #%d (ID: %d):", i+1, log.ID),
			"  Session: "+orNA(log.SessionID.String),
			"  Time: "+log.CreatedAt,
			fmt.Sprintf("  Duration: %dms", log.DurationMs.Int64),
		)
		lines = append(lines, r.describeRequest(log.RequestJSON)...)
		lines = append(lines, "  Response: "+r.describeResponse(log.ResponseJSON.String))
	}
	return lines, nil
}

func (r *Renderer) providerBreakdown(ctx context.Context) ([]string, error) {
	stats, err := r.agg.ProviderBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("%-15s %-10s %s", "Provider", "Total", "Errors 500"),
		strings.Repeat("-", 40),
	}
	for _, ps := range stats {
		lines = append(lines, fmt.Sprintf("%-15s %-10d %d", ps.Provider, ps.Total, ps.Errors500))
	}
	return lines, nil
}

func (r *Renderer) failureTypes(ctx context.Context) ([]string, error) {
	types, err := r.agg.FailureTypes(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return []string{noFailures}, nil
	}

	var lines []string
	for _, ft := range types {
		lines = append(lines, fmt.Sprintf("ID %d: %s", ft.ID, ft.Label))
		if ft.Preview != "" {
			lines = append(lines, "  "+ft.Preview)
		}
	}
	return lines, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
