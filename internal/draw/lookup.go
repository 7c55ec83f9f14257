package draw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownEntry is wrapped by UnknownEntryError.
var ErrUnknownEntry = errors.New("draw: unknown entry")

// UnknownEntryError carries the closest team name when one is near enough to
// be a likely typo.
type UnknownEntryError struct {
	Query      string
	Suggestion string
}

func (e *UnknownEntryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no team %q (did you mean %q?)", e.Query, e.Suggestion)
	}
	return fmt.Sprintf("no team %q", e.Query)
}

func (e *UnknownEntryError) Unwrap() error { return ErrUnknownEntry }

// maxSuggestDistance bounds how far a suggestion may be from the query.
const maxSuggestDistance = 3

// Find resolves query to an entry by exact id first, then by case-insensitive
// name.
func Find(b Board, query string) (ContainerID, Entry, error) {
	q := strings.TrimSpace(query)
	if c, e, ok := b.Locate(q); ok {
		return c, e, nil
	}
	best, bestDist := "", -1
	for _, c := range Containers() {
		for _, e := range b.Entries(c) {
			if strings.EqualFold(e.Name, q) {
				return c, e, nil
			}
			d := levenshtein.ComputeDistance(strings.ToLower(e.Name), strings.ToLower(q))
			if bestDist < 0 || d < bestDist {
				best, bestDist = e.Name, d
			}
		}
	}
	uerr := &UnknownEntryError{Query: q}
	if bestDist >= 0 && bestDist <= maxSuggestDistance {
		uerr.Suggestion = best
	}
	return "", Entry{}, uerr
}
