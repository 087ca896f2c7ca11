package store

import (
	"database/sql"
	"fmt"
)

// Well-known keys for application state.
const (
	KeyCourses   = "pathfound_courses"
	KeyAPIKey    = "pathfound_api_key"
	KeyToken     = "pathfound_token"
	NotesKeyStem = "pathfound_notes_"
)

// NotesKey returns the store key holding notes for a video.
func NotesKey(videoID string) string {
	return NotesKeyStem + videoID
}

// KV is a string key-value store with explicit presence reporting.
//
// Get returns found=false (not an error) when the key is absent, so callers
// can distinguish "never written" from a failed read.
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
	Close() error
}

// SQLiteKV implements [KV] over the kv table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a [SQLiteKV] with the given database connection.
// The connection must have migrations applied.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Get retrieves the value for a key.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes a value, replacing any existing value for the key.
func (s *SQLiteKV) Set(key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Keys lists all stored keys with the given prefix, sorted.
func (s *SQLiteKV) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
