// Package blobstore provides storage abstraction for benchsample's dataset
// collections.
//
// Store is the interface for reading and writing named objects (collections,
// auxiliary assets, documentation files). Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemoryStore: in-memory store for testing
//   - s3.Store: Amazon S3 with streaming multipart uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Decorators
//
//   - RateLimited: throttles operations against remote backends
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)    // open for reading
//	    Create(ctx, name) (io.WriteCloser, error) // create for writing
//	    Stat(ctx, name) (int64, error)
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
