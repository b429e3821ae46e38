// Package record defines the opaque benchmark record shape and the composite
// ID sort key used for deterministic ordering.
//
// A Record is a single benchmark item decoded from line-delimited JSON. Its
// contents are passed through unmodified; only the "id" field has typed
// access, so unknown fields survive a sample/save round trip.
package record

import (
	"fmt"
)

// Record is one benchmark item: an arbitrary JSON object keyed by "id".
//
// Records are never mutated by this library, only reordered and filtered.
type Record map[string]any

// ID returns the string form of the record's "id" value.
//
// Non-string values are formatted; a missing id yields "".
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// IDSet collects the IDs of all records into a set.
func IDSet(recs []Record) map[string]struct{} {
	ids := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		ids[r.ID()] = struct{}{}
	}
	return ids
}

// ByID builds an ID → record mapping for O(1) lookup.
//
// On duplicate IDs the last record wins; collections are assumed to carry
// unique IDs, this is not enforced.
func ByID(recs []Record) map[string]Record {
	m := make(map[string]Record, len(recs))
	for _, r := range recs {
		m[r.ID()] = r
	}
	return m
}

// FilterByID returns the records whose ID is present in ids, preserving the
// input order.
func FilterByID(recs []Record, ids map[string]struct{}) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if _, ok := ids[r.ID()]; ok {
			out = append(out, r)
		}
	}
	return out
}
