package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/drawboard/internal/draw"
	"github.com/jask/drawboard/internal/storage"
)

func importedBoard(t *testing.T) draw.Board {
	t.Helper()
	b, _, err := (&IngestService{}).ImportRows([][]string{
		{"1", "Alpha"}, {"2", "Delta"}, {"7", "Beta"}, {"13", "Gamma"},
	})
	require.NoError(t, err)
	return b
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := &StateService{Blobs: storage.NewMemory()}
	b := importedBoard(t)
	b = draw.Move(b, "pot1-1", draw.PotContainer(draw.Pot1), draw.GroupContainer(draw.GroupC))
	require.NoError(t, st.Save(ctx, b))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}

	// Empty board survives too; containers come back as empty, not null.
	require.NoError(t, st.Save(ctx, draw.NewBoard()))
	got, err = st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, draw.NewBoard(), got)
}

func TestStateUsesKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mem := storage.NewMemory()
	require.NoError(t, (&StateService{Blobs: mem}).Save(ctx, draw.NewBoard()))
	_, err := mem.Get(ctx, DefaultStateKey)
	require.NoError(t, err)

	custom := &StateService{Blobs: mem, Key: "finals"}
	_, err = custom.Load(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStateLoadCorrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, blob := range map[string]string{
		"not json":       `{not json`,
		"wrong shape":    `{"pots":[],"groups":{}}`,
		"missing groups": `{"pots":{"pot1":[],"pot2":[],"pot3":[]}}`,
		"null pot":       `{"pots":{"pot1":null,"pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]}}`,
		"unknown field":  `{"pots":{"pot1":[],"pot2":[],"pot3":[]},"groups":{"A":[],"B":[],"C":[],"D":[],"E":[],"F":[]},"extra":1}`,
	} {
		mem := storage.NewMemory()
		require.NoError(t, mem.Put(ctx, DefaultStateKey, []byte(blob)), name)
		st := &StateService{Blobs: mem}

		_, err := st.Load(ctx)
		require.ErrorIs(t, err, storage.ErrNotFound, name)

		left, err := mem.Get(ctx, DefaultStateKey)
		require.NoError(t, err, name)
		require.Equal(t, blob, string(left), name)
	}
}

func TestStateReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := &StateService{Blobs: storage.NewMemory()}
	require.NoError(t, st.Save(ctx, importedBoard(t)))
	require.NoError(t, st.Reset(ctx))
	_, err := st.Load(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, st.Reset(ctx))
}

func TestStateRequiresStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := &StateService{}
	require.Error(t, st.Save(ctx, draw.NewBoard()))
	_, err := st.Load(ctx)
	require.Error(t, err)
	require.Error(t, st.Reset(ctx))
}
