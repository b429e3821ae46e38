// Package minio provides a blobstore.Store implementation for MinIO and
// other S3-compatible object stores.
//
// # Usage
//
//	client, err := minio.New("play.min.io", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "benchmarks", "bfcl/data/")
package minio
