package draw

import (
	"fmt"
	"strings"
)

// ContainerID identifies a pot or a group. Its value is the PotID or GroupID
// string itself ("pot2", "C").
type ContainerID string

// Kind distinguishes pots from groups.
type Kind string

const (
	KindPot   Kind = "pot"
	KindGroup Kind = "group"
)

// PotContainer and GroupContainer lift typed ids into container ids.
func PotContainer(p PotID) ContainerID     { return ContainerID(p) }
func GroupContainer(g GroupID) ContainerID { return ContainerID(g) }

// Containers lists every container: groups first, then pots.
func Containers() []ContainerID {
	out := make([]ContainerID, 0, len(Groups)+len(Pots))
	for _, g := range Groups {
		out = append(out, GroupContainer(g))
	}
	for _, p := range Pots {
		out = append(out, PotContainer(p))
	}
	return out
}

// Pot returns the pot id when c names a pot.
func (c ContainerID) Pot() (PotID, bool) {
	p := PotID(c)
	return p, p.Valid()
}

// Group returns the group id when c names a group.
func (c ContainerID) Group() (GroupID, bool) {
	g := GroupID(c)
	return g, g.Valid()
}

// Kind reports whether c is a pot or a group; the empty Kind means c is not a
// board container.
func (c ContainerID) Kind() Kind {
	if _, ok := c.Pot(); ok {
		return KindPot
	}
	if _, ok := c.Group(); ok {
		return KindGroup
	}
	return ""
}

// Valid reports whether c is one of the nine board containers.
func (c ContainerID) Valid() bool { return c.Kind() != "" }

// Label is the display name ("Pot 2", "Group C").
func (c ContainerID) Label() string {
	if p, ok := c.Pot(); ok {
		return p.Label()
	}
	if g, ok := c.Group(); ok {
		return g.Label()
	}
	return string(c)
}

// ParseContainer accepts the forms a person types: "pot2", "p2", "C",
// "group c", "groupC", "group-C".
func ParseContainer(s string) (ContainerID, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	if strings.HasPrefix(norm, "p") && !strings.HasPrefix(norm, "pot") {
		norm = "pot" + strings.TrimPrefix(norm, "p")
	}
	if p := PotID(norm); p.Valid() {
		return PotContainer(p), nil
	}
	norm = strings.TrimPrefix(norm, "group")
	if g := GroupID(strings.ToUpper(norm)); g.Valid() {
		return GroupContainer(g), nil
	}
	return "", fmt.Errorf("unknown container %q", s)
}
