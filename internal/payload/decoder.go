package payload

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

type decoded struct {
	m   Map
	err error
}

// Decoder memoizes Decode results for the lifetime of one report run.
// Stock failure bodies repeat across records, so identical texts are
// decoded once. Returned maps are shared and must not be modified.
type Decoder struct {
	cache *ristretto.Cache[string, decoded]
}

// NewDecoder creates a Decoder holding up to maxEntries results.
func NewDecoder(maxEntries int64) (*Decoder, error) {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, decoded]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decode cache: %w", err)
	}
	return &Decoder{cache: cache}, nil
}

// Decode behaves like the package-level Decode.
func (d *Decoder) Decode(text string) (Map, error) {
	if d == nil || text == "" {
		return Decode(text)
	}
	if r, ok := d.cache.Get(text); ok {
		return r.m, r.err
	}

	m, err := Decode(text)
	d.cache.Set(text, decoded{m: m, err: err}, 1)
	return m, err
}

// Close releases the cache.
func (d *Decoder) Close() {
	if d != nil {
		d.cache.Close()
	}
}
