package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the local state database at path and
// ensures the app_state table exists.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping state db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return db, nil
}

// LocalState is a small durable key/value store over sqlite. It backs the
// persisted session entries.
type LocalState struct {
	db *sql.DB
}

func NewLocalState(db *sql.DB) *LocalState {
	return &LocalState{db: db}
}

// Get returns the stored value for key, or "" with found=false if absent.
func (s *LocalState) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *LocalState) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set state[%s]: %w", key, err)
	}
	return nil
}

func (s *LocalState) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete state[%s]: %w", key, err)
	}
	return nil
}
