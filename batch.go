package benchsample

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/benchsample/blobstore"
	"github.com/hupe1980/benchsample/dataset"
	"github.com/hupe1980/benchsample/jsonl"
	"github.com/hupe1980/benchsample/record"
)

// Runner is the directory orchestrator: it samples every eligible collection
// in a source store into a destination store, mirroring the ground-truth
// answer subdirectory and copying auxiliary assets verbatim.
type Runner struct {
	src     blobstore.Store
	dst     blobstore.Store
	sampler *Sampler
	opts    options
}

// NewRunner creates a Runner over a source and destination store.
func NewRunner(src, dst blobstore.Store, sampler *Sampler, optFns ...Option) *Runner {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return &Runner{
		src:     src,
		dst:     dst,
		sampler: sampler,
		opts:    o,
	}
}

// Run processes every eligible collection in the source store.
//
// Eligible collections are top-level objects with a .json or .jsonl
// extension, optionally compressed. A per-file failure is logged, recorded
// in the report and never aborts the batch; a missing source store fails
// with ErrMissingSource before anything is processed.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	names, err := r.src.List(ctx, "")
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
		}
		return nil, err
	}

	var eligible []string
	for _, name := range names {
		if strings.Contains(name, "/") {
			continue // top-level collections only
		}
		if !jsonl.IsCollection(name) {
			continue
		}
		ok, err := path.Match(r.opts.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", r.opts.pattern, err)
		}
		if ok {
			eligible = append(eligible, name)
		}
	}

	results := make([]FileResult, len(eligible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.concurrency)
	for i, name := range eligible {
		i, name := i, name
		g.Go(func() error {
			start := time.Now()
			results[i] = r.processFile(gctx, name)
			r.opts.metrics.RecordFile(time.Since(start), results[i].Err)
			if err := results[i].Err; err != nil {
				// Contained: the batch continues with the next file.
				r.opts.logger.LogSample(gctx, name, 0, 0, err)
				return nil
			}
			r.opts.logger.LogSample(gctx, name, results[i].Records, results[i].Answers, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := r.copyAux(ctx); err != nil {
		return nil, err
	}

	return &Report{Files: results}, nil
}

// processFile samples one collection and writes the outputs.
func (r *Runner) processFile(ctx context.Context, name string) FileResult {
	result := FileResult{Name: name}

	loadStart := time.Now()
	recs, err := dataset.Load(ctx, r.src, name)
	r.opts.metrics.RecordLoad(time.Since(loadStart), err)
	if err != nil {
		result.Err = err
		return result
	}

	answerName := path.Join(r.opts.answerDir, name)
	hasAnswers, err := dataset.Exists(ctx, r.src, answerName)
	if err != nil {
		result.Err = err
		return result
	}

	if !hasAnswers {
		sampleStart := time.Now()
		sampled, err := r.sampler.Sample(recs)
		if err != nil {
			result.Err = err
			return result
		}
		r.opts.metrics.RecordSample(len(sampled), 0, time.Since(sampleStart))

		if err := r.save(ctx, name, sampled); err != nil {
			result.Err = err
			return result
		}
		result.Records = len(sampled)
		return result
	}

	loadStart = time.Now()
	answers, err := dataset.Load(ctx, r.src, answerName)
	r.opts.metrics.RecordLoad(time.Since(loadStart), err)
	if err != nil {
		result.Err = err
		return result
	}

	sampleStart := time.Now()
	sampledRecs, sampledAnswers, err := r.sampler.SampleWithAnswers(recs, answers)
	if err != nil {
		result.Err = err
		return result
	}
	r.opts.metrics.RecordSample(len(sampledRecs), len(sampledAnswers), time.Since(sampleStart))

	if err := r.save(ctx, name, sampledRecs); err != nil {
		result.Err = err
		return result
	}
	if err := r.save(ctx, answerName, sampledAnswers); err != nil {
		result.Err = err
		return result
	}

	result.Records = len(sampledRecs)
	result.Answers = len(sampledAnswers)
	result.HasAnswers = true
	return result
}

func (r *Runner) save(ctx context.Context, name string, recs []record.Record) error {
	start := time.Now()
	err := dataset.Save(ctx, r.dst, name, recs)
	r.opts.metrics.RecordSave(time.Since(start), err)
	return err
}

// copyAux mirrors auxiliary asset subdirectories and documentation files
// into the destination, byte for byte, overwriting existing content.
func (r *Runner) copyAux(ctx context.Context) error {
	for _, prefix := range r.opts.auxPrefixes {
		names, err := r.src.List(ctx, prefix)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				continue
			}
			return err
		}
		for _, name := range names {
			if err := blobstore.Copy(ctx, r.dst, r.src, name); err != nil {
				return fmt.Errorf("copy %s: %w", name, err)
			}
		}
		r.opts.logger.InfoContext(ctx, "copied auxiliary directory", "dir", prefix)
	}

	for _, name := range r.opts.docFiles {
		ok, err := blobstore.Exists(ctx, r.src, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := blobstore.Copy(ctx, r.dst, r.src, name); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
		r.opts.logger.InfoContext(ctx, "copied documentation file", "file", name)
	}
	return nil
}
