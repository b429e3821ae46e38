package record

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SortKey is the composite ordering key derived from a record ID.
//
// Records sharing a prefix sort by ascending numeric value. The key
// reproduces benchmark-style identifiers: "exec_simple_84" sorts as
// ("exec_simple", 84), "live_irrelevance_12" as ("live_irrelevance", 12).
type SortKey struct {
	Prefix  string
	Numeric int64
}

// Less reports whether k orders before o.
func (k SortKey) Less(o SortKey) bool {
	if k.Prefix != o.Prefix {
		return k.Prefix < o.Prefix
	}
	return k.Numeric < o.Numeric
}

// ParseSortKey derives the composite sort key from an ID string.
//
// An empty ID yields ("", 0), the lowest priority. If the ID contains an
// underscore and the final segment parses as an integer, the key is
// (everything before the last underscore, that integer). Otherwise the
// numeric part is assembled from all digit characters and the prefix from
// all letters; with no digits at all the full ID becomes the prefix.
func ParseSortKey(id string) SortKey {
	if id == "" {
		return SortKey{}
	}

	if i := strings.LastIndex(id, "_"); i >= 0 {
		if n, err := strconv.ParseInt(id[i+1:], 10, 64); err == nil {
			return SortKey{Prefix: id[:i], Numeric: n}
		}
	}

	var digits, letters strings.Builder
	for _, r := range id {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case unicode.IsLetter(r):
			letters.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return SortKey{Prefix: id}
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return SortKey{Prefix: id}
	}
	return SortKey{Prefix: letters.String(), Numeric: n}
}

// SortByID stably sorts a copy of recs by the composite sort key and returns
// it. The input slice is left untouched; sorting an already-sorted
// collection is a no-op ordering-wise.
func SortByID(recs []Record) []Record {
	keyed := make([]struct {
		key SortKey
		rec Record
	}, len(recs))
	for i, r := range recs {
		keyed[i].key = ParseSortKey(r.ID())
		keyed[i].rec = r
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key.Less(keyed[j].key)
	})

	sorted := make([]Record, len(keyed))
	for i := range keyed {
		sorted[i] = keyed[i].rec
	}
	return sorted
}
