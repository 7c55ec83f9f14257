package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/jask/drawboard/internal/storage/storagetest"
)

// overrideSQLOpen swaps the opener for the duration of a test.
func overrideSQLOpen(t *testing.T, fn func(driver, dsn string) (*sql.DB, error)) {
	t.Helper()
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = fn
	openMu.Unlock()
	t.Cleanup(func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	})
}

// The queries stick to SQL that sqlite also accepts ($n placeholders,
// ON CONFLICT upserts), so the store can run without a server.
func TestStoreContractOnSQLiteStandIn(t *testing.T) {
	var gotDriver, gotDSN string
	overrideSQLOpen(t, func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		return db, nil
	})

	s, err := Open(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.Equal(t, "pgx", gotDriver)
	require.Equal(t, defaultDSN, gotDSN)

	storagetest.Run(t, s)
}

func TestOpenReportsOpenerFailure(t *testing.T) {
	overrideSQLOpen(t, func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	})
	_, err := Open(context.Background(), "postgres://nowhere")
	require.ErrorContains(t, err, "open postgres")
}

func TestStoreContractLive(t *testing.T) {
	dsn := os.Getenv("DRAWBOARD_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DRAWBOARD_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Delete(ctx, "bracketState"))
	require.NoError(t, s.Delete(ctx, "otherKey"))
	storagetest.Run(t, s)
}
