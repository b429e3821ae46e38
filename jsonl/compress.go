package jsonl

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// NewReader wraps r with the decompressor implied by name's extension.
//
// ".gz", ".zst" and ".lz4" are recognized; any other name passes r through
// untouched. The returned ReadCloser does not close r.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch CompressionExt(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the compressor implied by name's extension.
//
// Close flushes the compressor but does not close w; callers own the
// underlying writer.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch CompressionExt(name) {
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".zst":
		return zstd.NewWriter(w)
	case ".lz4":
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
