package blobstore

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
//
// The root is not required to exist yet; Create makes directories on demand.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open opens an object for reading.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

// Create opens an object for writing, creating parent directories as needed.
// Existing content is truncated.
func (s *LocalStore) Create(_ context.Context, name string) (io.WriteCloser, error) {
	p := s.path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	return os.Create(p)
}

// Stat returns the size of an object.
func (s *LocalStore) Stat(_ context.Context, name string) (int64, error) {
	info, err := os.Stat(s.path(name))
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, ErrNotFound
	}
	return info.Size(), nil
}

// List returns all regular files under prefix, sorted, as slash-separated
// names relative to the store root.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	base := s.root
	if prefix != "" {
		base = s.path(prefix)
	}

	var names []string
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Walk order is lexical per directory, but interleaving of files and
	// subdirectories differs from a flat sort.
	sort.Strings(names)

	// Guard against prefixes that name a file rather than a directory.
	if prefix != "" {
		filtered := names[:0]
		want := strings.TrimSuffix(prefix, "/") + "/"
		for _, n := range names {
			if strings.HasPrefix(n, want) || n == strings.TrimSuffix(prefix, "/") {
				filtered = append(filtered, n)
			}
		}
		names = filtered
	}
	return names, nil
}
