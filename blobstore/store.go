package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when an object (or the store root itself) does not
// exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing named dataset objects.
//
// Names are slash-separated paths relative to the store root. Collections
// are streamed sequentially, so objects are plain read/write streams rather
// than random-access blobs. Implementations must be safe for concurrent use.
type Store interface {
	// Open opens an object for reading. Returns ErrNotFound if absent.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create opens an object for writing, truncating any previous content.
	// Intermediate directories (where the backend has them) are created as
	// needed; creation is idempotent. The write is finalized on Close.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Stat returns the size of an object, or ErrNotFound.
	Stat(ctx context.Context, name string) (int64, error)

	// List returns the names of all objects under prefix, sorted, relative
	// to the store root. Listing a store whose root does not exist returns
	// ErrNotFound; an existing-but-empty root lists successfully as empty.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Exists reports whether an object is present in the store.
func Exists(ctx context.Context, s Store, name string) (bool, error) {
	_, err := s.Stat(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Copy streams one object from src to dst under the same name, unmodified.
func Copy(ctx context.Context, dst, src Store, name string) error {
	r, err := src.Open(ctx, name)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	w, err := dst.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
