// Package jsonl encodes and decodes line-delimited JSON collections.
//
// The wire format is one JSON object per line, UTF-8, with a trailing
// newline after each record. Collections may be stored compressed; the
// compression scheme is selected by file extension (see NewReader and
// NewWriter).
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/benchsample/record"
)

// maxLineSize bounds a single record line (64 MiB). Benchmark records carry
// whole conversation transcripts, so the default scanner limit is too small.
const maxLineSize = 64 << 20

// LineError reports a line that failed JSON decoding.
//
// The underlying decode error can be accessed via errors.Unwrap.
type LineError struct {
	Line  int // 1-based
	cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.cause)
}

func (e *LineError) Unwrap() error { return e.cause }

// DecodeAll reads every line of r as one JSON object.
//
// A line that is not valid JSON aborts the decode with a *LineError; a
// malformed collection indicates corrupt input and is never silently
// truncated. Blank lines are skipped.
func DecodeAll(r io.Reader) ([]record.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var recs []record.Record
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec record.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &LineError{Line: line, cause: err}
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// EncodeAll writes recs to w, one JSON object per line with a trailing
// newline after each record. The input order is preserved.
func EncodeAll(w io.Writer, recs []record.Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, rec := range recs {
		// json.Encoder appends the newline itself.
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CompressionExt returns the compression suffix of name (".gz", ".zst" or
// ".lz4"), or "" for plain files.
func CompressionExt(name string) string {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".gz", ".zst", ".lz4":
		return ext
	default:
		return ""
	}
}

// DataExt returns the data extension of name with any compression suffix
// stripped, lower-cased: "a/BFCL_v3_live.json.gz" → ".json".
func DataExt(name string) string {
	if c := CompressionExt(name); c != "" {
		name = name[:len(name)-len(c)]
	}
	return strings.ToLower(path.Ext(name))
}

// IsCollection reports whether name looks like a line-delimited JSON
// collection, optionally compressed.
func IsCollection(name string) bool {
	switch DataExt(name) {
	case ".json", ".jsonl":
		return true
	default:
		return false
	}
}
