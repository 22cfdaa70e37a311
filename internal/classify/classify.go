// Package classify assigns a shape label to a raw response payload.
package classify

import "strings"

// Label names a response payload shape.
type Label string

const (
	Empty            Label = "empty"
	ContainsError    Label = "contains-error"
	ContentEmpty     Label = "content-empty"
	StandardError500 Label = "standard-error-500"
	Other            Label = "other"
)

// StandardError500Body is the body the chat backend stores when a provider
// call fails without an error message.
const StandardError500Body = `{"content":"","status":500}`

// Rule pairs a predicate over the raw payload with the label it assigns.
type Rule struct {
	Label Label
	Match func(raw string) bool
}

func contains(substr string) func(string) bool {
	return func(raw string) bool { return strings.Contains(raw, substr) }
}

// rules are evaluated top to bottom; the first match wins. Matching is on
// the unparsed text.
var rules = []Rule{
	{Empty, func(raw string) bool { return raw == "" }},
	{ContainsError, contains(`"error"`)},
	{ContentEmpty, contains(`"content":""`)},
	// Shadowed by ContentEmpty: StandardError500Body contains `"content":""`.
	{StandardError500, func(raw string) bool { return raw == StandardError500Body }},
}

// Rules returns the classification rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify returns the label of the first rule matching raw, or Other.
// An absent payload is passed as the empty string.
func Classify(raw string) Label {
	for _, r := range rules {
		if r.Match(raw) {
			return r.Label
		}
	}
	return Other
}
