// Command benchsample downsamples a benchmark dataset directory.
//
//	benchsample --data ./berkeley-function-call-leaderboard/data --percentage 5
//
// writes a 5% sample of every JSON/JSONL collection (and the matching
// possible_answer entries) into a sibling data_5 directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/benchsample"
	"github.com/hupe1980/benchsample/blobstore"
)

var (
	percentage  float64
	dataDir     string
	outDir      string
	pattern     string
	seed        int64
	concurrency int
	auxDirs     []string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "benchsample",
	Short: "Sample benchmark datasets while keeping records and answers aligned",
	Long: `benchsample reduces a directory of line-delimited JSON benchmark
collections to a representative subset.

Every sampled record that has a ground-truth answer in possible_answer/
keeps it; outputs are deterministically sorted by ID. A corrupt collection
is skipped with a diagnostic, never aborting the batch.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Float64VarP(&percentage, "percentage", "p", 5.0, "percentage of data to sample, in (0, 100]")
	rootCmd.Flags().StringVarP(&dataDir, "data", "d", "data", "source dataset directory")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "destination directory (default <data>_<percentage>)")
	rootCmd.Flags().StringVar(&pattern, "pattern", "*", "glob restricting which collections are sampled")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 seeds from the current time")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of files processed in parallel")
	rootCmd.Flags().StringSliceVar(&auxDirs, "aux", []string{"multi_turn_func_doc"}, "auxiliary subdirectories copied verbatim")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	ratio := percentage / 100.0
	if ratio <= 0 || ratio > 1 {
		return fmt.Errorf("%w: percentage must be in (0, 100], got %v", benchsample.ErrInvalidRatio, percentage)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := benchsample.NewTextLogger(level)

	opts := []benchsample.Option{
		benchsample.WithLogger(logger),
		benchsample.WithConcurrency(concurrency),
		benchsample.WithAuxPrefixes(auxDirs...),
		benchsample.WithPattern(pattern),
	}
	if seed != 0 {
		opts = append(opts, benchsample.WithRand(rand.New(rand.NewSource(seed)))) // nolint gosec
	}

	sampler, err := benchsample.New(ratio, opts...)
	if err != nil {
		return err
	}

	dest := outDir
	if dest == "" {
		dest = fmt.Sprintf("%s_%d", strings.TrimRight(dataDir, "/"), int(percentage))
	}

	runner := benchsample.NewRunner(
		blobstore.NewLocalStore(dataDir),
		blobstore.NewLocalStore(dest),
		sampler,
		opts...,
	)

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("batch complete",
		"files", len(report.Files),
		"failed", len(report.Failed()),
		"records", report.Records(),
		"answers", report.Answers(),
		"dest", dest,
	)

	// Per-file failures were already logged; the batch itself succeeded.
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
