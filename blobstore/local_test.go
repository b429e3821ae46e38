package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	// 1. Create, including a nested name
	data := []byte(`{"id":"exec_simple_1"}` + "\n")

	w, err := store.Create(ctx, "possible_answer/BFCL_v3_exec.json")
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Parent directory creation is idempotent.
	w2, err := store.Create(ctx, "possible_answer/other.json")
	require.NoError(t, err)
	require.NoError(t, w2.Close())

	_, err = os.Stat(filepath.Join(tmpDir, "possible_answer", "BFCL_v3_exec.json"))
	require.NoError(t, err)

	// 2. Open and read back
	r, err := store.Open(ctx, "possible_answer/BFCL_v3_exec.json")
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, data, got)

	// 3. Stat
	size, err := store.Stat(ctx, "possible_answer/BFCL_v3_exec.json")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)

	_, err = store.Stat(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	// Directories do not stat as objects.
	_, err = store.Stat(ctx, "possible_answer")
	assert.ErrorIs(t, err, ErrNotFound)

	// 4. List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"possible_answer/BFCL_v3_exec.json", "possible_answer/other.json"}, names)

	names, err = store.List(ctx, "possible_answer")
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, content := range []string{"first version, longer than the second\n", "second\n"} {
		w, err := store.Create(ctx, "a.jsonl")
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	r, err := store.Open(ctx, "a.jsonl")
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "second\n", string(got))
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := store.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Open(context.Background(), "a.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
