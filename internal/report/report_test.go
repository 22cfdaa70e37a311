package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandalnilabja/logscope/internal/analysis"
	"github.com/mandalnilabja/logscope/internal/payload"
	"github.com/mandalnilabja/logscope/internal/storage"
	"github.com/mandalnilabja/logscope/internal/storage/storagetest"
)

func sampleRows() []storagetest.Row {
	message := strings.Repeat("abcdefghij", 6)
	return []storagetest.Row{
		{SessionID: "s1", RequestJSON: `{"provider":"groq","model":"llama3","message":"hello"}`, ResponseJSON: `{"content":"hi"}`, StatusCode: 200, DurationMs: 100, CreatedAt: "2025-05-01 09:00:00"},
		{SessionID: "s1", RequestJSON: `{"provider":"groq","model":"llama3","message":"` + message + `"}`, ResponseJSON: `{"error":"timeout"}`, StatusCode: 500, DurationMs: 30000, CreatedAt: "2025-05-01 10:00:00"},
		{SessionID: nil, RequestJSON: `{"provider":"gigachat"}`, ResponseJSON: `{"content":"","status":500}`, StatusCode: 500, DurationMs: nil, CreatedAt: "2025-05-01 11:00:00"},
		{SessionID: "s2", RequestJSON: `not json`, ResponseJSON: nil, StatusCode: nil, DurationMs: nil, CreatedAt: "2025-05-01 08:00:00"},
	}
}

func newRenderer(t *testing.T, store storage.Reader) *Renderer {
	t.Helper()

	decoder, err := payload.NewDecoder(64)
	require.NoError(t, err)
	t.Cleanup(decoder.Close)

	return New(analysis.New(store, analysis.DefaultLimits(), nil), decoder, nil)
}

func openStore(t *testing.T, rows ...storagetest.Row) storage.Reader {
	t.Helper()

	store, err := storage.OpenSQLiteReader(context.Background(), storagetest.NewDB(t, rows...))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRender_Golden(t *testing.T) {
	r := newRenderer(t, openStore(t, sampleRows()...))

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, "test.db"))

	want, err := os.ReadFile("testdata/report.golden")
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestRender_Idempotent(t *testing.T) {
	r := newRenderer(t, openStore(t, sampleRows()...))

	var first, second bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &first, "test.db"))
	require.NoError(t, r.Render(context.Background(), &second, "test.db"))
	assert.Equal(t, first.String(), second.String())
}

func TestRender_NoFailures(t *testing.T) {
	r := newRenderer(t, openStore(t, storagetest.Row{RequestJSON: `{"provider":"ollama"}`, StatusCode: 200}))

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, "ok.db"))

	out := buf.String()
	assert.Contains(t, out, "--- Last 10 errors 500 ---\nNo 500 errors found\n")
	assert.NotContains(t, out, "Session ID")
	assert.Contains(t, out, "ollama          1          0\n")
}

// failingReader fails provider stats and delegates everything else.
type failingReader struct {
	storage.Reader
}

func (failingReader) GetProviderStats(context.Context) ([]*storage.ProviderStats, error) {
	return nil, &storage.Error{Op: "query provider stats", Err: errors.New("disk I/O error")}
}

func TestRender_SectionFailureDoesNotBlockOthers(t *testing.T) {
	r := newRenderer(t, failingReader{openStore(t, sampleRows()...)})

	var buf bytes.Buffer
	err := r.Render(context.Background(), &buf, "test.db")
	require.Error(t, err)

	var serr *storage.Error
	assert.True(t, errors.As(err, &serr), "expected storage error in chain, got %v", err)

	out := buf.String()
	assert.Contains(t, out, "--- Provider breakdown ---\n❌ Provider breakdown: query provider stats: disk I/O error\n")
	assert.Contains(t, out, "--- Response error types ---\nID 3: content-empty\n")
	assert.NotContains(t, out, "Analysis complete")
}

func TestDescribeResponse(t *testing.T) {
	r := newRenderer(t, nil)
	long := strings.Repeat("x", 400)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "EMPTY"},
		{"standard 500 body", `{"content":"","status":500}`, "content empty, status 500"},
		{"error string", `{"error":"timeout"}`, "ERROR - timeout"},
		{"error object", `{"error":{"code":429}}`, `ERROR - {"code":429}`},
		{"error wins over content", `{"content":"x","error":"boom"}`, "ERROR - boom"},
		{"empty content", `{"content":""}`, "content empty"},
		{"null content", `{"content":null}`, "content empty"},
		{"zero content", `{"content":0}`, "content empty"},
		{"false content", `{"content":false}`, "content empty"},
		{"empty array content", `{"content":[]}`, "content empty"},
		{"empty object content", `{"content":{}}`, "content empty"},
		{"non-empty array content", `{"content":["a"]}`, `["a"]...`},
		{"content", `{"content":"partial answer"}`, "partial answer..."},
		{"long content", `{"content":"` + long + `"}`, strings.Repeat("x", 100) + "..."},
		{"no known keys", `{"status":502}`, `{"status":502}...`},
		{"malformed", `{"content":"` + long, (`{"content":"` + long)[:150] + "..."},
		{"not an object", `[1,2,3]`, `[1,2,3]...`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.describeResponse(tc.raw))
		})
	}
}

func TestDescribeRequest(t *testing.T) {
	r := newRenderer(t, nil)

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "full",
			raw:  `{"provider":"groq","model":"x","message":"hi"}`,
			want: []string{"  Request:", "    - Provider: groq", "    - Model: x", "    - Message: hi..."},
		},
		{
			name: "long message",
			raw:  `{"message":"` + strings.Repeat("abcdefghij", 6) + `"}`,
			want: []string{"  Request:", "    - Provider: N/A", "    - Model: N/A", "    - Message: " + strings.Repeat("abcdefghij", 5) + "..."},
		},
		{
			name: "empty payload",
			raw:  "",
			want: []string{"  Request:", "    - Provider: N/A", "    - Model: N/A", "    - Message: N/A"},
		},
		{
			name: "malformed payload",
			raw:  `{"provider":"groq"`,
			want: []string{`  Request: {"provider":"groq"...`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.describeRequest(tc.raw))
		})
	}
}

func TestSection_String(t *testing.T) {
	s := Section{Title: "Title", Lines: []string{"a", "", "b"}}
	assert.Equal(t, "\n--- Title ---\na\n\nb\n", s.String())
}
