package benchsample

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/benchsample/record"
)

// Sampler draws uniform-random samples without replacement from record
// collections, keeping sampled records and their ground-truth answers
// pairwise aligned.
//
// Safe for concurrent use; draws from the shared random source are
// serialized.
type Sampler struct {
	ratio   float64
	logger  *Logger
	metrics MetricsCollector

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Sampler for the given ratio in (0, 1].
//
// Ratio validation happens here, before any data is touched; an invalid
// ratio fails with ErrInvalidRatio.
func New(ratio float64, optFns ...Option) (*Sampler, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}

	return &Sampler{
		ratio:   ratio,
		rnd:     o.rnd,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// Ratio returns the configured sample ratio.
func (s *Sampler) Ratio() float64 { return s.ratio }

// SampleSize returns the number of records drawn from a population of n:
// max(1, floor(n*ratio)). At least one record is always sampled from a
// non-empty population, even at very small ratios.
func (s *Sampler) SampleSize(n int) int {
	k := int(float64(n) * s.ratio)
	if k < 1 {
		k = 1
	}
	return k
}

// Sample draws a uniform-random sample without replacement from records and
// returns it sorted by the composite ID sort key.
//
// Sampling from an empty collection fails with ErrInsufficientData.
func (s *Sampler) Sample(records []record.Record) ([]record.Record, error) {
	sampled, err := s.draw(records)
	if err != nil {
		return nil, err
	}
	return record.SortByID(sampled), nil
}

// SampleWithAnswers samples records that have a matching answer and returns
// the sample together with the exactly-corresponding answers.
//
// Records without a matching answer are excluded up front: they cannot be
// validly sampled-with-answer. Both outputs are sorted by the composite ID
// sort key and are pairwise aligned by position and by ID.
func (s *Sampler) SampleWithAnswers(records, answers []record.Record) ([]record.Record, []record.Record, error) {
	answerIDs := record.IDSet(answers)
	valid := record.FilterByID(records, answerIDs)
	answerByID := record.ByID(answers)

	sampled, err := s.draw(valid)
	if err != nil {
		return nil, nil, err
	}
	sampled = record.SortByID(sampled)

	// Collect answers in sample order. The mapping was built from the same
	// answer set used for filtering, so a miss should not occur; a sampled
	// record with no resolvable answer is skipped rather than failing the
	// whole collection.
	aligned := make([]record.Record, 0, len(sampled))
	for _, rec := range sampled {
		a, ok := answerByID[rec.ID()]
		if !ok {
			s.logger.Warn("sampled record has no matching answer", "id", rec.ID())
			continue
		}
		aligned = append(aligned, a)
	}

	if len(sampled) != len(aligned) {
		s.logger.Warn("sampled records and answers lengths don't match",
			"records", len(sampled),
			"answers", len(aligned),
		)
		min := len(sampled)
		if len(aligned) < min {
			min = len(aligned)
		}
		sampled = sampled[:min]
		aligned = aligned[:min]
	}

	// Authoritative answer output: re-filter the full answer collection to
	// the sampled IDs and sort. This guarantees completeness and ordering
	// independent of the incremental build above.
	sampledIDs := record.IDSet(sampled)
	final := record.SortByID(record.FilterByID(answers, sampledIDs))

	return sampled, final, nil
}

// draw picks SampleSize(len(recs)) records without replacement.
func (s *Sampler) draw(recs []record.Record) ([]record.Record, error) {
	n := len(recs)
	if n == 0 {
		return nil, ErrInsufficientData
	}
	k := s.SampleSize(n)

	s.mu.Lock()
	perm := s.rnd.Perm(n)
	s.mu.Unlock()

	out := make([]record.Record, k)
	for i := 0; i < k; i++ {
		out[i] = recs[perm[i]]
	}
	return out, nil
}
