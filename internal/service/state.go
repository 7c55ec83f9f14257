package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/draw"
	"github.com/jask/drawboard/internal/storage"
)

// DefaultStateKey is where the board lives when no key is configured.
const DefaultStateKey = "bracketState"

// StateService persists the board as one JSON blob under a fixed key.
type StateService struct {
	Blobs storage.BlobStore
	Key   string
	Log   *zap.Logger
}

func (s *StateService) key() string {
	if s.Key == "" {
		return DefaultStateKey
	}
	return s.Key
}

func (s *StateService) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Save overwrites the persisted board with b.
func (s *StateService) Save(ctx context.Context, b draw.Board) error {
	if s.Blobs == nil {
		return errors.New("state: store not configured")
	}
	data, err := draw.Encode(b)
	if err != nil {
		return err
	}
	if err := s.Blobs.Put(ctx, s.key(), data); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Load returns the persisted board. A blob that does not decode to a valid
// board is logged and reported as storage.ErrNotFound; it is not removed.
func (s *StateService) Load(ctx context.Context) (draw.Board, error) {
	if s.Blobs == nil {
		return draw.Board{}, errors.New("state: store not configured")
	}
	data, err := s.Blobs.Get(ctx, s.key())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return draw.Board{}, storage.ErrNotFound
		}
		return draw.Board{}, fmt.Errorf("load board: %w", err)
	}
	b, err := draw.Decode(data)
	if err != nil {
		s.log().Warn("ignoring persisted board",
			zap.String("key", s.key()),
			zap.Error(fmt.Errorf("%w: %v", ErrCorruptState, err)))
		return draw.Board{}, storage.ErrNotFound
	}
	return b, nil
}
