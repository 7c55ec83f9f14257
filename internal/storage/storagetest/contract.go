// Package storagetest holds the behaviour every storage.BlobStore must share,
// so each backend's tests can run the same checks.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/drawboard/internal/storage"
)

// Run exercises get/put/overwrite/delete semantics against s.
func Run(t *testing.T, s storage.BlobStore) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.Get(ctx, "bracketState")
	require.True(t, errors.Is(err, storage.ErrNotFound), "missing key: got %v", err)

	require.NoError(t, s.Put(ctx, "bracketState", []byte(`{"v":1}`)))
	got, err := s.Get(ctx, "bracketState")
	require.NoError(t, err)
	require.Equal(t, `{"v":1}`, string(got))

	require.NoError(t, s.Put(ctx, "bracketState", []byte(`{not json`)))
	got, err = s.Get(ctx, "bracketState")
	require.NoError(t, err)
	require.Equal(t, `{not json`, string(got), "blobs are opaque")

	require.NoError(t, s.Put(ctx, "otherKey", []byte("x")))

	require.NoError(t, s.Delete(ctx, "bracketState"))
	_, err = s.Get(ctx, "bracketState")
	require.True(t, errors.Is(err, storage.ErrNotFound), "after delete: got %v", err)
	require.NoError(t, s.Delete(ctx, "bracketState"), "delete is idempotent")

	got, err = s.Get(ctx, "otherKey")
	require.NoError(t, err)
	require.Equal(t, "x", string(got))
}
