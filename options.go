package benchsample

import (
	"math/rand"
)

type options struct {
	rnd         *rand.Rand
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
	answerDir   string
	auxPrefixes []string
	docFiles    []string
	pattern     string
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		concurrency: 1,
		answerDir:   "possible_answer",
		auxPrefixes: []string{"multi_turn_func_doc"},
		docFiles:    []string{"README.md"},
		pattern:     "*",
	}
}

// Option configures Sampler and Runner behavior.
//
// A single option type keeps the API surface small; options that only apply
// to the Runner are ignored by the Sampler and vice versa.
type Option func(*options)

// WithRand injects the random source used for drawing samples.
//
// The default source is seeded from the current time, so repeated runs
// produce different samples. Inject a fixed-seed source to make sampling
// deterministic (tests rely on this).
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		if rnd != nil {
			o.rnd = rnd
		}
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics configures a metrics collector.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

// WithConcurrency bounds how many files the Runner processes in parallel.
//
// The default is 1: files are processed to completion in listing order,
// matching the reference batch behavior. Files are independent units of
// work, so higher values only change scheduling, never results.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithAnswerDir overrides the subdirectory holding ground-truth answer
// collections (default "possible_answer").
func WithAnswerDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.answerDir = dir
		}
	}
}

// WithAuxPrefixes sets the auxiliary asset subdirectories copied verbatim
// into the destination after sampling (default "multi_turn_func_doc").
func WithAuxPrefixes(prefixes ...string) Option {
	return func(o *options) {
		o.auxPrefixes = prefixes
	}
}

// WithDocFiles sets the top-level documentation files copied verbatim into
// the destination if present (default "README.md").
func WithDocFiles(names ...string) Option {
	return func(o *options) {
		o.docFiles = names
	}
}

// WithPattern restricts processing to collections whose base name matches
// the glob pattern (default "*"), e.g. "BFCL_v3_*".
func WithPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}
