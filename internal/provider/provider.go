// Package provider infers which upstream LLM provider handled a logged request.
package provider

import "strings"

// Unspecified is reported when no provider marker is present.
const Unspecified = "unspecified"

// Infer returns the provider whose marker first appears in the raw request
// JSON, testing rules in precedence order. The text is never decoded, so
// malformed payloads are classified the same way as well-formed ones.
func Infer(rawRequest string) string {
	for _, r := range rules {
		if strings.Contains(rawRequest, r.Marker) {
			return r.Name
		}
	}
	return Unspecified
}
