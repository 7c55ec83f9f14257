package repository

import "time"

// BoardState is one persisted board blob.
type BoardState struct {
	Key       string
	Payload   string
	UpdatedAt time.Time
}
