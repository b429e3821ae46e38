// Package s3 provides an Amazon S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("bfcl/data/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	report, err := runner.Run(ctx) // runner built over the store
//
// # Features
//
//   - Streaming multipart uploads for large collections
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
