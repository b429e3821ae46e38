package benchsample

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/benchsample/record"
)

func makeRecords(prefix string, n int) []record.Record {
	recs := make([]record.Record, n)
	for i := range recs {
		recs[i] = record.Record{"id": fmt.Sprintf("%s_%d", prefix, i), "seq": float64(i)}
	}
	return recs
}

func TestNew_InvalidRatio(t *testing.T) {
	for _, ratio := range []float64{0, -0.1, 1.0001, 2} {
		_, err := New(ratio)
		assert.ErrorIs(t, err, ErrInvalidRatio, "ratio %v", ratio)
	}

	_, err := New(1)
	assert.NoError(t, err)
}

func TestSampler_SampleSize(t *testing.T) {
	s, err := New(0.05)
	require.NoError(t, err)

	assert.Equal(t, 5, s.SampleSize(100))
	assert.Equal(t, 1, s.SampleSize(19)) // floor(0.95) -> at least one
	assert.Equal(t, 1, s.SampleSize(1))
}

func TestSampler_Sample_Cardinality(t *testing.T) {
	for _, tt := range []struct {
		n     int
		ratio float64
		want  int
	}{
		{n: 100, ratio: 0.05, want: 5},
		{n: 100, ratio: 1, want: 100},
		{n: 3, ratio: 0.5, want: 1},
		{n: 10, ratio: 0.01, want: 1},
		{n: 7, ratio: 0.33, want: 2},
	} {
		t.Run(fmt.Sprintf("n=%d_ratio=%v", tt.n, tt.ratio), func(t *testing.T) {
			s, err := New(tt.ratio)
			require.NoError(t, err)

			sampled, err := s.Sample(makeRecords("live_simple", tt.n))
			require.NoError(t, err)
			assert.Len(t, sampled, tt.want)
		})
	}
}

func TestSampler_Sample_Sorted(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)

	sampled, err := s.Sample([]record.Record{
		{"id": "exec_simple_84"},
		{"id": "exec_simple_3"},
		{"id": "exec_simple_21"},
	})
	require.NoError(t, err)

	assert.Equal(t, "exec_simple_3", sampled[0].ID())
	assert.Equal(t, "exec_simple_21", sampled[1].ID())
	assert.Equal(t, "exec_simple_84", sampled[2].ID())
}

func TestSampler_Sample_Empty(t *testing.T) {
	s, err := New(0.5)
	require.NoError(t, err)

	_, err = s.Sample(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSampler_Sample_WithoutReplacement(t *testing.T) {
	s, err := New(0.5)
	require.NoError(t, err)

	sampled, err := s.Sample(makeRecords("exec_simple", 40))
	require.NoError(t, err)
	require.Len(t, sampled, 20)

	seen := make(map[string]struct{})
	for _, r := range sampled {
		_, dup := seen[r.ID()]
		assert.False(t, dup, "duplicate %s", r.ID())
		seen[r.ID()] = struct{}{}
	}
}

func TestSampler_Deterministic_WithSeed(t *testing.T) {
	recs := makeRecords("live_irrelevance", 50)

	s1, err := New(0.2, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	s2, err := New(0.2, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	a, err := s1.Sample(recs)
	require.NoError(t, err)
	b, err := s2.Sample(recs)
	require.NoError(t, err)

	assert.Equal(t, ids(a), ids(b))
}

func TestSampler_SampleWithAnswers_Scenario100(t *testing.T) {
	// 100 records, 100 matching answers, ratio 0.05 -> exactly 5 of each.
	records := makeRecords("exec_simple", 100)
	answers := makeRecords("exec_simple", 100)

	s, err := New(0.05)
	require.NoError(t, err)

	recs, ans, err := s.SampleWithAnswers(records, answers)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	require.Len(t, ans, 5)

	// Pairwise referential integrity: same IDs, aligned by position.
	for i := range recs {
		assert.Equal(t, recs[i].ID(), ans[i].ID())
	}
}

func TestSampler_SampleWithAnswers_PartialAnswers(t *testing.T) {
	// 3 records, answers for only 1, ratio 0.5: the filtered population is a
	// single record, so the sample holds exactly it and its answer.
	records := []record.Record{
		{"id": "live_simple_0"},
		{"id": "live_simple_1"},
		{"id": "live_simple_2"},
	}
	answers := []record.Record{{"id": "live_simple_1", "truth": "yes"}}

	s, err := New(0.5)
	require.NoError(t, err)

	recs, ans, err := s.SampleWithAnswers(records, answers)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Len(t, ans, 1)
	assert.Equal(t, "live_simple_1", recs[0].ID())
	assert.Equal(t, "yes", ans[0]["truth"])
}

func TestSampler_SampleWithAnswers_Integrity(t *testing.T) {
	records := makeRecords("exec_parallel", 200)
	answers := makeRecords("exec_parallel", 200)

	s, err := New(0.33, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	recs, ans, err := s.SampleWithAnswers(records, answers)
	require.NoError(t, err)
	require.Len(t, recs, 66)
	require.Len(t, ans, 66)

	assert.Equal(t, record.IDSet(recs), record.IDSet(ans))

	// Both outputs are sorted by the composite key.
	assert.Equal(t, ids(record.SortByID(recs)), ids(recs))
	assert.Equal(t, ids(record.SortByID(ans)), ids(ans))
}

func TestSampler_SampleWithAnswers_NoAnswers(t *testing.T) {
	s, err := New(0.5)
	require.NoError(t, err)

	// No record has an answer: the filtered population is empty.
	_, _, err = s.SampleWithAnswers(makeRecords("exec_simple", 5), nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func ids(recs []record.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}
