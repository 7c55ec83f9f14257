// Package draw holds the board model for a manual group-stage draw: three pots
// of teams, six groups, and the transition that moves one team between them.
package draw

import (
	"fmt"
	"strings"
)

// PotID names one of the three source pots.
type PotID string

// GroupID names one of the six destination groups.
type GroupID string

const (
	Pot1 PotID = "pot1"
	Pot2 PotID = "pot2"
	Pot3 PotID = "pot3"
)

const (
	GroupA GroupID = "A"
	GroupB GroupID = "B"
	GroupC GroupID = "C"
	GroupD GroupID = "D"
	GroupE GroupID = "E"
	GroupF GroupID = "F"
)

// GroupCapacity is the advisory group size shown next to each group. It is
// never enforced.
const GroupCapacity = 3

// Pots and Groups list the fixed container keys in display order.
var (
	Pots   = []PotID{Pot1, Pot2, Pot3}
	Groups = []GroupID{GroupA, GroupB, GroupC, GroupD, GroupE, GroupF}
)

// Valid reports whether p is one of the three pots.
func (p PotID) Valid() bool {
	switch p {
	case Pot1, Pot2, Pot3:
		return true
	}
	return false
}

// Label is the human name of the pot ("Pot 1").
func (p PotID) Label() string {
	return "Pot " + strings.TrimPrefix(string(p), "pot")
}

// Valid reports whether g is one of the six groups.
func (g GroupID) Valid() bool {
	switch g {
	case GroupA, GroupB, GroupC, GroupD, GroupE, GroupF:
		return true
	}
	return false
}

// Label is the human name of the group ("Group A").
func (g GroupID) Label() string { return "Group " + string(g) }

// Entry is one team on the board. PotID is the pot the team was seeded into
// at import time; it does not change when the team moves.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	PotID PotID  `json:"potId"`
}

// Board places every entry into exactly one pot or group.
type Board struct {
	Pots   map[PotID][]Entry   `json:"pots"`
	Groups map[GroupID][]Entry `json:"groups"`
}

// NewBoard returns a board with every container present and empty.
func NewBoard() Board {
	b := Board{
		Pots:   make(map[PotID][]Entry, len(Pots)),
		Groups: make(map[GroupID][]Entry, len(Groups)),
	}
	for _, p := range Pots {
		b.Pots[p] = []Entry{}
	}
	for _, g := range Groups {
		b.Groups[g] = []Entry{}
	}
	return b
}

// Entries returns the contents of c, or nil when c is not a board container.
// The returned slice must not be modified.
func (b Board) Entries(c ContainerID) []Entry {
	if p, ok := c.Pot(); ok {
		return b.Pots[p]
	}
	if g, ok := c.Group(); ok {
		return b.Groups[g]
	}
	return nil
}

// Len counts entries across all containers.
func (b Board) Len() int {
	n := 0
	for _, es := range b.Pots {
		n += len(es)
	}
	for _, es := range b.Groups {
		n += len(es)
	}
	return n
}

// Locate finds the container currently holding id.
func (b Board) Locate(id string) (ContainerID, Entry, bool) {
	for _, c := range Containers() {
		for _, e := range b.Entries(c) {
			if e.ID == id {
				return c, e, true
			}
		}
	}
	return "", Entry{}, false
}

// Validate checks the board invariants: the exact container key set, no nil
// containers, and non-empty ids that are unique across the whole board.
func (b Board) Validate() error {
	if len(b.Pots) != len(Pots) {
		return fmt.Errorf("board has %d pots, want %d", len(b.Pots), len(Pots))
	}
	if len(b.Groups) != len(Groups) {
		return fmt.Errorf("board has %d groups, want %d", len(b.Groups), len(Groups))
	}
	seen := make(map[string]ContainerID, b.Len())
	for _, c := range Containers() {
		var (
			es []Entry
			ok bool
		)
		if p, isPot := c.Pot(); isPot {
			es, ok = b.Pots[p]
		} else if g, isGroup := c.Group(); isGroup {
			es, ok = b.Groups[g]
		}
		if !ok {
			return fmt.Errorf("container %s missing", c)
		}
		if es == nil {
			return fmt.Errorf("container %s is null", c)
		}
		for i, e := range es {
			if strings.TrimSpace(e.ID) == "" {
				return fmt.Errorf("container %s entry %d: empty id", c, i)
			}
			if !e.PotID.Valid() {
				return fmt.Errorf("entry %s: unknown pot %q", e.ID, e.PotID)
			}
			if prev, dup := seen[e.ID]; dup {
				return fmt.Errorf("entry %s appears in %s and %s", e.ID, prev, c)
			}
			seen[e.ID] = c
		}
	}
	return nil
}

// CapacityLabel renders the advisory fill of a group, e.g. "2/3 teams".
func CapacityLabel(n int) string {
	return fmt.Sprintf("%d/%d teams", n, GroupCapacity)
}

// PotForNumber maps a seeding number to its pot: 1-6 pot1, 7-12 pot2,
// 13-18 pot3. Anything else lands in pot1.
func PotForNumber(n int) PotID {
	switch {
	case n >= 1 && n <= 6:
		return Pot1
	case n >= 7 && n <= 12:
		return Pot2
	case n >= 13 && n <= 18:
		return Pot3
	default:
		return Pot1
	}
}
