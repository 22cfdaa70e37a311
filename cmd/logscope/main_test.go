package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandalnilabja/logscope/internal/storage/storagetest"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("LOGSCOPE_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("LOGSCOPE_DB_PATH", "")
}

func TestExecute_Report(t *testing.T) {
	isolateConfig(t)
	db := storagetest.NewDB(t,
		storagetest.Row{SessionID: "s1", RequestJSON: `{"provider":"groq"}`, ResponseJSON: `{"error":"timeout"}`, StatusCode: 500, DurationMs: 10},
		storagetest.Row{SessionID: "s1", RequestJSON: `{"provider":"groq"}`, ResponseJSON: `{"content":"ok"}`, StatusCode: 200, DurationMs: 5},
	)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{db, "--log-level", "debug"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "=== Log analysis: "+db+" ===\n"))
	assert.Contains(t, out, "Errors 500: 1\n")
	assert.Contains(t, out, "  Response: ERROR - timeout\n")
	assert.True(t, strings.HasSuffix(out, "=== Analysis complete ===\n"))

	assert.Contains(t, stderr.String(), "run_id=")
	assert.Contains(t, stderr.String(), "query=summary")
}

func TestExecute_StdoutIsIdempotent(t *testing.T) {
	isolateConfig(t)
	db := storagetest.NewDB(t,
		storagetest.Row{RequestJSON: `{"provider":"ollama"}`, ResponseJSON: "", StatusCode: 500},
	)

	var first, second bytes.Buffer
	require.Equal(t, 0, execute(context.Background(), []string{db}, &first, &bytes.Buffer{}))
	require.Equal(t, 0, execute(context.Background(), []string{db}, &second, &bytes.Buffer{}))
	assert.Equal(t, first.String(), second.String())
}

func TestExecute_MissingDatabase(t *testing.T) {
	isolateConfig(t)
	missing := filepath.Join(t.TempDir(), "nope.db")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{missing}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "❌ SQLite error: "), "got %q", stdout.String())
}

func TestExecute_MissingTable(t *testing.T) {
	isolateConfig(t)
	db := storagetest.NewEmptyDB(t)

	var stdout bytes.Buffer
	code := execute(context.Background(), []string{db}, &stdout, &bytes.Buffer{})

	assert.Equal(t, 1, code)
	out := stdout.String()
	assert.Contains(t, out, "--- Overall summary ---\n❌ Overall summary: ")
	assert.Contains(t, out, "--- Response error types ---\n❌ ")
	assert.Contains(t, out, "❌ SQLite error: ")
	assert.NotContains(t, out, "Analysis complete")
}

func TestExecute_TooManyArgs(t *testing.T) {
	isolateConfig(t)

	var stdout bytes.Buffer
	code := execute(context.Background(), []string{"a.db", "b.db"}, &stdout, &bytes.Buffer{})

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "❌ Error: "), "got %q", stdout.String())
}

func TestExecute_DefaultPathFromEnv(t *testing.T) {
	isolateConfig(t)
	db := storagetest.NewDB(t)
	t.Setenv("LOGSCOPE_DB_PATH", db)

	var stdout bytes.Buffer
	require.Equal(t, 0, execute(context.Background(), nil, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "Total logs: 0\n")
	assert.Contains(t, stdout.String(), "No 500 errors found\n")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "INFO", parseLevel("INFO").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "WARN", parseLevel("").String())
	assert.Equal(t, "WARN", parseLevel("verbose").String())
}
