package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
)

// NewTestDB opens an empty, migrated in-memory store that is closed when the
// test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(db.MemoryDSN)
	require.NoError(t, err, "opening test store")
	t.Cleanup(func() { store.Close() })
	return store
}

func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
