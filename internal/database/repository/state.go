package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jask/drawboard/internal/database"
	"github.com/jask/drawboard/internal/storage"
)

// StateRepo keeps board blobs in the board_state table. It satisfies
// storage.BlobStore.
type StateRepo struct {
	db *sql.DB
}

var _ storage.BlobStore = (*StateRepo)(nil)

func NewStateRepo(db *sql.DB) *StateRepo { return &StateRepo{db: db} }

func (r *StateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT payload FROM board_state WHERE key = ?`, key)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (r *StateRepo) Put(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO board_state(key, payload, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at;
	`, key, string(data), database.Now().Format(time.RFC3339))
	return err
}

func (r *StateRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM board_state WHERE key = ?`, key)
	return err
}

// Row returns the stored row with its update time, or nil when absent.
func (r *StateRepo) Row(ctx context.Context, key string) (*BoardState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, payload, updated_at FROM board_state WHERE key = ?`, key)
	var (
		s       BoardState
		updated string
	)
	if err := row.Scan(&s.Key, &s.Payload, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, updated)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = t
	return &s, nil
}
