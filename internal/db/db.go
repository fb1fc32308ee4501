package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory database that lives as long as
// the returned *sql.DB.
const MemoryPath = ":memory:"

// OpenDB opens the herd session store at path and applies the schema.
// MemoryPath keeps the session in memory; any other path is created on
// demand so a session can be resumed later.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each pooled connection to ":memory:" would otherwise see its own
	// empty database, and pragmas below only bind the connection they ran on.
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA foreign_keys = ON"}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
