package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/drawboard/internal/storage"
	"github.com/jask/drawboard/internal/storage/storagetest"
)

func TestMemoryContract(t *testing.T) {
	storagetest.Run(t, storage.NewMemory())
}

func TestMemoryCopiesData(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Put(ctx, "k", buf))
	buf[0] = 'z'
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestFileContract(t *testing.T) {
	f, err := storage.NewFile(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	storagetest.Run(t, f)
}

func TestFileWritesNamedJSON(t *testing.T) {
	dir := t.TempDir()
	f, err := storage.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Put(context.Background(), "bracketState", []byte("{}")))

	data, err := os.ReadFile(filepath.Join(dir, "bracketState.json"))
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
	_, err = os.Stat(filepath.Join(dir, "bracketState.json.tmp"))
	require.True(t, os.IsNotExist(err))
}

func TestFileRejectsPathKeys(t *testing.T) {
	f, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "../escape", "a/b", ".."} {
		require.Error(t, f.Put(context.Background(), key, []byte("x")), key)
	}
}

func TestNewFileRequiresDir(t *testing.T) {
	_, err := storage.NewFile("  ")
	require.Error(t, err)
}
