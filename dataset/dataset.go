// Package dataset implements the record store adapter: named collections of
// benchmark records persisted as line-delimited JSON on a blobstore.
//
// A collection is read once at the start of processing, transformed in
// memory and written once at the end; there is no persistent store beyond
// the backing object.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/benchsample/blobstore"
	"github.com/hupe1980/benchsample/jsonl"
	"github.com/hupe1980/benchsample/record"
)

// MalformedRecordError reports a collection line that failed JSON decoding.
//
// The underlying decode error can be accessed via errors.Unwrap.
type MalformedRecordError struct {
	Name  string
	Line  int
	cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record in %s (line %d): %v", e.Name, e.Line, e.cause)
}

func (e *MalformedRecordError) Unwrap() error { return e.cause }

// Load reads the named collection from the store.
//
// Compressed collections (.gz/.zst/.lz4) are decompressed transparently. A
// line that is not valid JSON fails the load with *MalformedRecordError;
// corrupt input is propagated, not swallowed.
func Load(ctx context.Context, store blobstore.Store, name string) ([]record.Record, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	zr, err := jsonl.NewReader(r, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = zr.Close() }()

	recs, err := jsonl.DecodeAll(zr)
	if err != nil {
		var le *jsonl.LineError
		if errors.As(err, &le) {
			return nil, &MalformedRecordError{Name: name, Line: le.Line, cause: le}
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return recs, nil
}

// Save writes recs as the named collection, sorted by the composite ID sort
// key. Previous content is fully overwritten, never appended; parent
// directory creation is idempotent and handled by the store.
func Save(ctx context.Context, store blobstore.Store, name string, recs []record.Record) error {
	sorted := record.SortByID(recs)

	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	zw, err := jsonl.NewWriter(w, name)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("create %s: %w", name, err)
	}

	if err := jsonl.EncodeAll(zw, sorted); err != nil {
		_ = zw.Close()
		_ = w.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		_ = w.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	return w.Close()
}

// Exists reports whether the named collection is present in the store.
func Exists(ctx context.Context, store blobstore.Store, name string) (bool, error) {
	return blobstore.Exists(ctx, store, name)
}
