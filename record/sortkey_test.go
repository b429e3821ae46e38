package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want SortKey
	}{
		{name: "underscore suffix", id: "exec_simple_84", want: SortKey{Prefix: "exec_simple", Numeric: 84}},
		{name: "multi part prefix", id: "live_irrelevance_12", want: SortKey{Prefix: "live_irrelevance", Numeric: 12}},
		{name: "single underscore", id: "simple_7", want: SortKey{Prefix: "simple", Numeric: 7}},
		{name: "empty", id: "", want: SortKey{Prefix: "", Numeric: 0}},
		{name: "no underscore with digits", id: "abc123", want: SortKey{Prefix: "abc", Numeric: 123}},
		{name: "interleaved digits", id: "a1b2c3", want: SortKey{Prefix: "abc", Numeric: 123}},
		{name: "no digits at all", id: "irrelevance", want: SortKey{Prefix: "irrelevance", Numeric: 0}},
		{name: "underscore but non-numeric tail", id: "multi_turn_base", want: SortKey{Prefix: "multi_turn_base", Numeric: 0}},
		{name: "trailing underscore", id: "exec_", want: SortKey{Prefix: "exec_", Numeric: 0}},
		{name: "numeric only", id: "42", want: SortKey{Prefix: "", Numeric: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.id))
		})
	}
}

func TestSortKey_Less(t *testing.T) {
	assert.True(t, SortKey{Prefix: "a", Numeric: 9}.Less(SortKey{Prefix: "b", Numeric: 1}))
	assert.True(t, SortKey{Prefix: "a", Numeric: 2}.Less(SortKey{Prefix: "a", Numeric: 10}))
	assert.False(t, SortKey{Prefix: "a", Numeric: 10}.Less(SortKey{Prefix: "a", Numeric: 2}))
	assert.False(t, SortKey{Prefix: "a", Numeric: 1}.Less(SortKey{Prefix: "a", Numeric: 1}))
}

func TestSortByID(t *testing.T) {
	recs := []Record{
		{"id": "exec_simple_84"},
		{"id": "exec_simple_9"},
		{"id": "exec_parallel_2"},
		{"id": ""},
		{"id": "exec_simple_100"},
	}

	sorted := recordIDs(SortByID(recs))
	assert.Equal(t, []string{"", "exec_parallel_2", "exec_simple_9", "exec_simple_84", "exec_simple_100"}, sorted)

	// Input must be untouched.
	assert.Equal(t, "exec_simple_84", recs[0].ID())
}

func TestSortByID_Idempotent(t *testing.T) {
	recs := []Record{
		{"id": "live_irrelevance_12"},
		{"id": "exec_simple_84"},
		{"id": "live_irrelevance_3"},
	}

	once := SortByID(recs)
	twice := SortByID(once)
	require.Equal(t, recordIDs(once), recordIDs(twice))
}

func recordIDs(recs []Record) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID()
	}
	return ids
}
