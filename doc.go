// Package benchsample reduces large benchmark datasets to smaller,
// representative subsets while preserving the referential integrity between
// records and their ground-truth answers.
//
// A dataset is a directory (local or on an object store) of line-delimited
// JSON collections, optionally paired with a possible_answer/ subdirectory
// holding answer collections keyed by record ID. Sampling keeps every
// sampled record's answer, sorts all output by the composite ID sort key
// and isolates per-file failures so one corrupt collection never aborts the
// batch.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	sampler, err := benchsample.New(0.05) // keep 5%
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := blobstore.NewLocalStore("./data")
//	dst := blobstore.NewLocalStore("./data_5")
//
//	runner := benchsample.NewRunner(src, dst, sampler)
//	report, err := runner.Run(ctx)
//	if err != nil {
//	    log.Fatal(err) // missing source or invalid configuration
//	}
//	for _, f := range report.Failed() {
//	    log.Printf("skipped %s: %v", f.Name, f.Err)
//	}
//
// Cloud mode:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("bfcl/data/"))
//	runner := benchsample.NewRunner(store, dst, sampler)
//
// # Determinism
//
// The random source defaults to a time seed, so repeated runs draw
// different samples. Output files are nevertheless always sorted by the
// composite ID sort key, and a fixed seed makes runs fully reproducible:
//
//	sampler, _ := benchsample.New(0.05,
//	    benchsample.WithRand(rand.New(rand.NewSource(42))),
//	)
//
// # Failure Model
//
// Ratio validation and a missing source directory are fatal. Everything
// else — a malformed collection, an empty population — is contained per
// file and surfaced in the Report, and the batch runs to completion.
package benchsample
