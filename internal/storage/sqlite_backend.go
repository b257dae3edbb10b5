package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores keys in a single kv table.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{
		path: path,
	}
}

func (b *SQLiteBackend) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	b.db = db

	if err := b.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (b *SQLiteBackend) Load() error {
	if b.db != nil {
		return nil
	}

	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'astroflow init' first")
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	b.db = db

	return b.ensureSchema()
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *SQLiteBackend) ensureSchema() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	if b.db == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (b *SQLiteBackend) Set(key string, value []byte) error {
	if b.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := b.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, string(value))
	return err
}

func (b *SQLiteBackend) Keys(prefix string) ([]string, error) {
	if b.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := b.db.Query("SELECT key FROM kv WHERE key LIKE ? ORDER BY key", prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (b *SQLiteBackend) ConfigPath() string {
	return b.path
}
