package draw

import (
	"errors"
	"fmt"
)

// ErrStaleMove reports a move whose source container does not hold the
// entry. It points at an inconsistent pick/drop, not at bad user data.
var ErrStaleMove = errors.New("draw: entry not in source container")

// Move takes entryID out of src and appends it to dst. A stale move returns b
// unchanged. Moving an entry onto its own container sends it to the back.
func Move(b Board, entryID string, src, dst ContainerID) Board {
	next, err := TryMove(b, entryID, src, dst)
	if err != nil {
		return b
	}
	return next
}

// TryMove is Move with the stale case reported as an error wrapping
// ErrStaleMove. b is never modified; the returned board shares only the
// containers the move did not touch.
func TryMove(b Board, entryID string, src, dst ContainerID) (Board, error) {
	if !src.Valid() || !dst.Valid() {
		return b, fmt.Errorf("%w: move %s from %q to %q", ErrStaleMove, entryID, src, dst)
	}
	from := b.Entries(src)
	idx := -1
	for i, e := range from {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return b, fmt.Errorf("%w: %s not in %s", ErrStaleMove, entryID, src)
	}
	moved := from[idx]

	next := b.shallowCopy()
	remaining := make([]Entry, 0, len(from)-1)
	for _, e := range from {
		if e.ID != entryID {
			remaining = append(remaining, e)
		}
	}
	next.set(src, remaining)

	to := next.Entries(dst)
	grown := make([]Entry, 0, len(to)+1)
	grown = append(grown, to...)
	grown = append(grown, moved)
	next.set(dst, grown)
	return next, nil
}

func (b Board) shallowCopy() Board {
	out := Board{
		Pots:   make(map[PotID][]Entry, len(b.Pots)),
		Groups: make(map[GroupID][]Entry, len(b.Groups)),
	}
	for k, v := range b.Pots {
		out.Pots[k] = v
	}
	for k, v := range b.Groups {
		out.Groups[k] = v
	}
	return out
}

func (b Board) set(c ContainerID, es []Entry) {
	if p, ok := c.Pot(); ok {
		b.Pots[p] = es
		return
	}
	if g, ok := c.Group(); ok {
		b.Groups[g] = es
	}
}
