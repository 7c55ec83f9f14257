package draw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleBoard() Board {
	b := NewBoard()
	b.Pots[Pot1] = []Entry{{ID: "pot1-0", Name: "Alpha", PotID: Pot1}, {ID: "pot1-1", Name: "Delta", PotID: Pot1}}
	b.Pots[Pot2] = []Entry{{ID: "pot2-0", Name: "Beta", PotID: Pot2}}
	b.Pots[Pot3] = []Entry{{ID: "pot3-0", Name: "Gamma", PotID: Pot3}}
	b.Groups[GroupA] = []Entry{{ID: "pot1-2", Name: "Echo", PotID: Pot1}}
	return b
}

func TestMovePotToGroup(t *testing.T) {
	b := sampleBoard()
	next := Move(b, "pot2-0", PotContainer(Pot2), GroupContainer(GroupA))

	require.Empty(t, next.Pots[Pot2])
	require.Equal(t, []Entry{
		{ID: "pot1-2", Name: "Echo", PotID: Pot1},
		{ID: "pot2-0", Name: "Beta", PotID: Pot2},
	}, next.Groups[GroupA])
	require.Equal(t, b.Len(), next.Len())
	require.NoError(t, next.Validate())
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	b := sampleBoard()
	before := sampleBoard()
	_ = Move(b, "pot1-0", PotContainer(Pot1), GroupContainer(GroupB))
	if diff := cmp.Diff(before, b); diff != "" {
		t.Fatalf("input board changed (-want +got):\n%s", diff)
	}
}

func TestMoveStaleIsNoop(t *testing.T) {
	b := sampleBoard()
	tests := []struct {
		name     string
		id       string
		src, dst ContainerID
	}{
		{"wrong source", "pot2-0", PotContainer(Pot1), GroupContainer(GroupA)},
		{"unknown id", "pot9-9", PotContainer(Pot1), GroupContainer(GroupA)},
		{"bad source", "pot1-0", "pot7", GroupContainer(GroupA)},
		{"bad destination", "pot1-0", PotContainer(Pot1), "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Move(b, tt.id, tt.src, tt.dst)
			if diff := cmp.Diff(b, next); diff != "" {
				t.Fatalf("stale move changed board (-want +got):\n%s", diff)
			}
			_, err := TryMove(b, tt.id, tt.src, tt.dst)
			require.True(t, errors.Is(err, ErrStaleMove), "got %v", err)
		})
	}
}

func TestMoveOntoSameContainer(t *testing.T) {
	b := sampleBoard()
	b = Move(b, "pot1-0", PotContainer(Pot1), GroupContainer(GroupA))
	before := len(b.Groups[GroupA])

	next := Move(b, "pot1-2", GroupContainer(GroupA), GroupContainer(GroupA))
	require.Len(t, next.Groups[GroupA], before)
	require.Equal(t, "pot1-2", next.Groups[GroupA][len(next.Groups[GroupA])-1].ID)

	count := 0
	for _, e := range next.Groups[GroupA] {
		if e.ID == "pot1-2" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestMoveIgnoresCapacity(t *testing.T) {
	b := sampleBoard()
	for _, id := range []string{"pot1-0", "pot1-1"} {
		b = Move(b, id, PotContainer(Pot1), GroupContainer(GroupA))
	}
	b = Move(b, "pot2-0", PotContainer(Pot2), GroupContainer(GroupA))
	b = Move(b, "pot3-0", PotContainer(Pot3), GroupContainer(GroupA))
	require.Len(t, b.Groups[GroupA], 5)
	require.Equal(t, "5/3 teams", CapacityLabel(len(b.Groups[GroupA])))
}

func TestMoveSequenceConservesEntries(t *testing.T) {
	b := sampleBoard()
	total := b.Len()
	steps := []struct {
		id       string
		src, dst ContainerID
	}{
		{"pot1-0", "pot1", "B"},
		{"pot1-0", "B", "C"},
		{"pot2-0", "pot2", "C"},
		{"pot1-0", "A", "D"}, // stale
		{"pot1-2", "A", "pot3"},
		{"pot1-2", "pot3", "pot3"},
		{"pot3-0", "pot3", "F"},
	}
	for _, s := range steps {
		b = Move(b, s.id, s.src, s.dst)
		require.Equal(t, total, b.Len())
		require.NoError(t, b.Validate())
	}
	c, _, ok := b.Locate("pot1-0")
	require.True(t, ok)
	require.Equal(t, GroupContainer(GroupC), c)
}
