// Package db materializes the pipeline's intermediate tables in SQLite.
// The token table written here is the single cache point of the run: it is
// built once and reused by the aggregation and every ad-hoc query.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "bigdataclass.db"

type DB struct {
	*sql.DB
	path string
}

// Options tunes SQLite memory usage. Zero values fall back to SQLite
// defaults.
type Options struct {
	CacheMemoryMB int
	MmapSizeMB    int
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return sqlDB, nil
}

// DefaultPath returns the database location next to the binary, falling back
// to the working directory if the executable path cannot be resolved.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultDBName
	}
	return filepath.Join(filepath.Dir(execPath), DefaultDBName)
}

// Open opens or creates the database at path and applies memory tuning and
// the schema. Use ":memory:" for a throwaway in-process database.
func Open(path string, opts Options) (*DB, error) {
	if path == "" {
		path = DefaultPath()
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB, path: path}

	if err := db.applyPragmas(opts); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to tune database: %w", err)
	}
	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// applyPragmas sizes the page cache and mmap window from the run config.
func (db *DB) applyPragmas(opts Options) error {
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		return err
	}
	if opts.CacheMemoryMB > 0 {
		// Negative cache_size means KiB rather than pages.
		if _, err := db.Exec(fmt.Sprintf("PRAGMA cache_size = %d", -opts.CacheMemoryMB*1024)); err != nil {
			return err
		}
	}
	if opts.MmapSizeMB > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA mmap_size = %d", int64(opts.MmapSizeMB)*1024*1024)); err != nil {
			return err
		}
	}
	return nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not.
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='tokens'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// Reset drops all materialized rows so a new mining run starts clean.
// Nothing in the database outlives a run by contract.
func (db *DB) Reset() error {
	for _, table := range []string{"word_counts", "tokens", "lines", "corpora"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	return nil
}
