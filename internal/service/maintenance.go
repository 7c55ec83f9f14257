package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Reset removes the persisted board. The next Load reports ErrNotFound.
// Resetting an already empty store is fine.
func (s *StateService) Reset(ctx context.Context) error {
	if s.Blobs == nil {
		return errors.New("state: store not configured")
	}
	if err := s.Blobs.Delete(ctx, s.key()); err != nil {
		return fmt.Errorf("reset board: %w", err)
	}
	s.log().Info("board reset", zap.String("key", s.key()))
	return nil
}
