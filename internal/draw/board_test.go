package draw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardHasEveryContainerEmpty(t *testing.T) {
	b := NewBoard()
	require.Len(t, b.Pots, 3)
	require.Len(t, b.Groups, 6)
	for _, c := range Containers() {
		es := b.Entries(c)
		require.NotNil(t, es, c)
		require.Empty(t, es, c)
	}
	require.Zero(t, b.Len())
	require.NoError(t, b.Validate())
}

func TestValidateRejectsBrokenBoards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Board)
	}{
		{"duplicate id", func(b *Board) {
			b.Groups[GroupB] = []Entry{{ID: "pot1-0", Name: "Alpha", PotID: Pot1}}
		}},
		{"empty id", func(b *Board) {
			b.Groups[GroupB] = []Entry{{ID: " ", Name: "Nobody", PotID: Pot1}}
		}},
		{"unknown pot", func(b *Board) {
			b.Groups[GroupB] = []Entry{{ID: "x", Name: "X", PotID: "pot4"}}
		}},
		{"null container", func(b *Board) { b.Groups[GroupF] = nil }},
		{"missing group", func(b *Board) { delete(b.Groups, GroupF) }},
		{"renamed group", func(b *Board) {
			delete(b.Groups, GroupF)
			b.Groups["G"] = []Entry{}
		}},
		{"extra pot", func(b *Board) { b.Pots["pot4"] = []Entry{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			tt.mutate(&b)
			require.Error(t, b.Validate())
		})
	}
}

func TestLocate(t *testing.T) {
	b := sampleBoard()
	c, e, ok := b.Locate("pot1-2")
	require.True(t, ok)
	require.Equal(t, GroupContainer(GroupA), c)
	require.Equal(t, "Echo", e.Name)

	_, _, ok = b.Locate("nope")
	require.False(t, ok)
}

func TestPotForNumber(t *testing.T) {
	tests := []struct {
		n    int
		want PotID
	}{
		{1, Pot1}, {6, Pot1}, {7, Pot2}, {12, Pot2}, {13, Pot3}, {18, Pot3},
		{0, Pot1}, {-4, Pot1}, {19, Pot1}, {100, Pot1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, PotForNumber(tt.n), "number %d", tt.n)
	}
}

func TestParseContainer(t *testing.T) {
	tests := map[string]ContainerID{
		"pot1":    "pot1",
		"POT3":    "pot3",
		"p2":      "pot2",
		"a":       "A",
		"F":       "F",
		"groupA":  "A",
		"group c": "C",
		"Group-E": "E",
	}
	for in, want := range tests {
		got, err := ParseContainer(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "pot4", "G", "groupZ", "p"} {
		_, err := ParseContainer(bad)
		require.Error(t, err, bad)
	}
}

func TestContainerLabels(t *testing.T) {
	require.Equal(t, "Pot 2", PotContainer(Pot2).Label())
	require.Equal(t, "Group D", GroupContainer(GroupD).Label())
	require.Equal(t, KindPot, ContainerID("pot1").Kind())
	require.Equal(t, KindGroup, ContainerID("B").Kind())
	require.False(t, ContainerID("b").Valid())
}
