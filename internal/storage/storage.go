// Package storage defines the key/value blob contract the board is persisted
// through, with in-process and filesystem implementations. Networked and
// database-backed implementations live in subpackages.
package storage

import (
	"context"
	"errors"
)

// Driver identifies a concrete blob backend.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-process (tests, throwaway sessions)
	DriverFile     Driver = "file"     // one file per key under a directory
	DriverSQLite   Driver = "sqlite"   // board_state table in a local database
	DriverPostgres Driver = "postgres" // board_state table via pgx
	DriverS3       Driver = "s3"       // one object per key in a bucket
)

// ErrNotFound is returned by Get when the key holds no blob.
var ErrNotFound = errors.New("storage: blob not found")

// BlobStore stores opaque text blobs under string keys. Put overwrites;
// Delete of a missing key is not an error.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
