package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/draw"
	"github.com/jask/drawboard/internal/storage"
)

// Session owns the live board. Every accepted change installs a new board
// value, bumps the version and writes through to State. It is not safe for
// concurrent use; the UI loop is its only caller.
type Session struct {
	State   *StateService
	Log     *zap.Logger
	board   draw.Board
	version int
}

// NewSession returns a session holding an empty board. Call Open to pick up
// the persisted one.
func NewSession(state *StateService, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{State: state, Log: log, board: draw.NewBoard()}
}

// Open installs the persisted board, or an empty one when nothing usable is
// stored.
func (s *Session) Open(ctx context.Context) error {
	b, err := s.State.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.Log.Info("no saved board, starting empty")
		s.install(draw.NewBoard())
		return nil
	case err != nil:
		return err
	}
	s.install(b)
	s.Log.Info("board restored", zap.Int("entries", b.Len()))
	return nil
}

// Board returns the current board. Callers must treat it as read-only.
func (s *Session) Board() draw.Board { return s.board }

// Version counts installs since the session was created.
func (s *Session) Version() int { return s.version }

// Move applies one transition. A move whose entry is not in src (stale
// drag, bad container) changes nothing and reports false. On an accepted
// move the new board stays installed even if saving it fails.
func (s *Session) Move(ctx context.Context, entryID string, src, dst draw.ContainerID) (bool, error) {
	next, err := draw.TryMove(s.board, entryID, src, dst)
	if err != nil {
		s.Log.Debug("move ignored",
			zap.String("entry", entryID),
			zap.String("from", string(src)),
			zap.String("to", string(dst)),
			zap.Error(err))
		return false, nil
	}
	s.install(next)
	s.Log.Debug("move",
		zap.String("entry", entryID),
		zap.String("from", string(src)),
		zap.String("to", string(dst)))
	return true, s.save(ctx)
}

// Replace installs b wholesale, typically a freshly imported board.
func (s *Session) Replace(ctx context.Context, b draw.Board) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("replace board: %w", err)
	}
	s.install(b)
	return s.save(ctx)
}

// Reset clears the persisted board and installs an empty one.
func (s *Session) Reset(ctx context.Context) error {
	err := s.State.Reset(ctx)
	s.install(draw.NewBoard())
	return err
}

func (s *Session) install(b draw.Board) {
	s.board = b
	s.version++
}

func (s *Session) save(ctx context.Context) error {
	if err := s.State.Save(ctx, s.board); err != nil {
		s.Log.Error("save failed; board kept in memory", zap.Error(err))
		return err
	}
	return nil
}
