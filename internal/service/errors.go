package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImport means no row survived the skip rules. The caller keeps
	// its current board.
	ErrEmptyImport = errors.New("no valid teams found in import")

	// ErrCorruptState marks a persisted blob that is not a well-formed board.
	// Load treats it as absent.
	ErrCorruptState = errors.New("persisted board is corrupt")
)

// ParseError reports a row whose number cell is not an integer. The row is
// skipped; the import carries on.
type ParseError struct {
	Row   int // 1-based
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: invalid number %q", e.Row, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
