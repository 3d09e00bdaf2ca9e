package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)", connectionDSN(MemoryDSN))
	assert.Equal(t, "store.db?_pragma=foreign_keys(1)", connectionDSN("store.db"))
	assert.Equal(t, "store.db?mode=rw&_pragma=foreign_keys(1)", connectionDSN("store.db?mode=rw"))
}

func TestOpenDB_FileStoreEnforcesForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	database, err := OpenDB(filepath.Join(t.TempDir(), "nested", "skillhatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Hold two connections at once so the pool has to open a second one.
	first, err := database.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := database.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	}

	_, err = second.ExecContext(ctx, `INSERT INTO lessons (id, course_id, title, order_index) VALUES (1, 999, 'Orphan', 1)`)
	assert.Error(t, err, "lesson of a missing course must be rejected")
}

func TestOpenDB_MemoryStoreEnforcesForeignKeys(t *testing.T) {
	database := openTestDB(t)

	var enabled int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}
