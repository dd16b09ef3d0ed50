package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/helpview/sqlite"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify tables exist by querying them
		ctx := context.Background()

		for _, table := range []string{"manuals", "history_entries", "history_state"} {
			var n int
			err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
			require.NoError(t, err, table)
		}
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}

func TestDB_Reopen(t *testing.T) {
	t.Parallel()

	// Given a file database with a registered manual
	dbPath := t.TempDir() + "/helpview.db"
	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO manuals (id, name, config_path, position, created_at) VALUES ('1', 'm', '/m.xml', 0, '2026-01-01T00:00:00Z')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// When I open it again
	db = sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	defer db.Close()

	// Then the schema is reused and data survives
	var n int
	err = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM manuals").Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
