package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryDSN selects a private in-memory database that lives as long as the
// returned *sql.DB.
const MemoryDSN = ":memory:"

// OpenDB opens the SkillHatch store at the given path.
// If path is ":memory:", the store is an in-memory database pinned to a single
// connection so that every query sees the same data.
// Foreign keys are enabled on every pooled connection through the DSN, and
// migrations run automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryDSN {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", connectionDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == MemoryDSN {
		// Each new connection to :memory: would be a fresh, empty database.
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// connectionDSN appends the per-connection pragmas. The sqlite driver runs
// each _pragma when it opens a connection.
func connectionDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}
