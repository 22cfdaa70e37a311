package report

import (
	"github.com/mandalnilabja/logscope/internal/classify"
	"github.com/mandalnilabja/logscope/internal/payload"
)

const (
	messageLen        = 50
	contentLen        = 100
	requestPreviewLen = 100
	ellipsis          = "..."
)

// describeRequest summarises a request payload. An empty payload has no
// fields; one that fails to decode is shown raw.
func (r *Renderer) describeRequest(raw string) []string {
	m, err := r.decoder.Decode(raw)
	if err != nil && raw != "" {
		return []string{"  Request: " + payload.Truncate(raw, requestPreviewLen) + ellipsis}
	}

	message := "N/A"
	if m.Has("message") {
		message = payload.Truncate(m.Text("message", ""), messageLen) + ellipsis
	}

	return []string{
		"  Request:",
		"    - Provider: " + m.Text("provider", "N/A"),
		"    - Model: " + m.Text("model", "N/A"),
		"    - Message: " + message,
	}
}

// describeResponse summarises a response payload, preferring the decoded
// error, then content, then a raw preview.
func (r *Renderer) describeResponse(raw string) string {
	switch raw {
	case "":
		return "EMPTY"
	case classify.StandardError500Body:
		return "content empty, status 500"
	}

	rawPreview := payload.Truncate(raw, r.agg.Limits().Preview) + ellipsis

	m, err := r.decoder.Decode(raw)
	if err != nil {
		return rawPreview
	}

	switch {
	case m.Has("error"):
		return "ERROR - " + m.Text("error", "N/A")
	case m.Has("content"):
		if isBlank(m["content"]) {
			return "content empty"
		}
		return payload.Truncate(m.Text("content", ""), contentLen) + ellipsis
	default:
		return rawPreview
	}
}

// isBlank reports JSON null, "", 0, false and empty arrays or objects.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
