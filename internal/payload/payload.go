// Package payload decodes the JSON request and response bodies stored in
// request logs.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEmpty is returned when there is nothing to decode.
var ErrEmpty = errors.New("payload is empty")

// DecodeError reports a payload that is not a JSON object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode payload: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errNotObject = errors.New("not a JSON object")

// Map is a decoded JSON object.
type Map map[string]any

// Has reports whether key is present, whatever its value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Text renders the value under key. Strings are returned as-is, other JSON
// values are re-encoded compactly. A missing key yields fallback.
func (m Map) Text(key, fallback string) string {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// Decode parses text as a JSON object.
func Decode(text string) (Map, error) {
	if text == "" {
		return nil, ErrEmpty
	}

	var m Map
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if m == nil {
		// literal null
		return nil, &DecodeError{Err: errNotObject}
	}
	return m, nil
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	// Invalid bytes count as one character each and are kept as stored.
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
